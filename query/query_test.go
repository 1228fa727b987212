package query

import (
	"testing"

	"github.com/cxykevin/mizar0/decoder"
)

const testDoc = "{\"items\":[{\"name\":\"a\",\"n\":1},{\"name\":\"b\",\"n\":2}],\"total\":2,\"ok\":true}"

func TestEval_FieldExtraction(t *testing.T) {
	v, err := decoder.Decode(testDoc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	out, err := Eval(v, "doc.items[1].name")
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if out != "b" {
		t.Fatalf("expected 'b', got %v", out)
	}
}

func TestEval_Predicate(t *testing.T) {
	v, err := decoder.Decode(testDoc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	out, err := Eval(v, "doc.total == 2 && doc.ok")
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if out != true {
		t.Fatalf("expected true, got %v", out)
	}
}

func TestQuery_Reuse(t *testing.T) {
	q, err := Compile("len(doc.items)")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	v1, _ := decoder.Decode(testDoc)
	v2, _ := decoder.Decode("{\"items\":[]}")

	out1, err := q.Run(v1)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out1 != 2 {
		t.Fatalf("expected 2, got %v", out1)
	}

	out2, err := q.Run(v2)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out2 != 0 {
		t.Fatalf("expected 0, got %v", out2)
	}
}

func TestCompile_BadExpression(t *testing.T) {
	if _, err := Compile("doc.["); err == nil {
		t.Fatal("bad expression should fail to compile")
	}
}
