// Package storage 文档存储
//
// 以 sqlite 持久化命名 JSON 文档，写入前必须通过解码器校验，
// 非法 JSON 一律硬拒绝
package storage

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/cxykevin/mizar0/decoder"
	"github.com/cxykevin/mizar0/jsonval"
	"github.com/cxykevin/mizar0/log"
	"github.com/cxykevin/mizar0/storage/structs"
)

const projectDataPath = ".mizar0"
const sqliteFileName = "db.sqlite"

var logger *log.LogsObj

func init() {
	logger = log.New("storage")
}

// Store 文档存储对象
type Store struct {
	db  *gorm.DB
	opt decoder.Options
}

// Open 打开存储，dataPath/dbFile 为空时取默认值或调试环境变量
// dbFile 为 ":memory:" 时使用内存数据库
func Open(dataPath string, dbFile string) (*Store, error) {
	if dataPath == "" {
		dataPath = projectDataPath
		if v := os.Getenv("MIZAR0_DEBUG_PROJECTPATH"); v != "" {
			dataPath = v
		}
	}
	if dbFile == "" {
		dbFile = sqliteFileName
		if v := os.Getenv("MIZAR0_DEBUG_SQLITEFILE"); v != "" {
			dbFile = v
		}
	}

	dbPath := dbFile
	if dbFile != ":memory:" {
		logger.Info("storage init in %s/%s", dataPath, dbFile)
		// 确保工作目录存在
		if err := os.MkdirAll(dataPath, 0755); err != nil {
			return nil, errors.Wrapf(err, "create data dir %s", dataPath)
		}
		dbPath = filepath.Join(dataPath, dbFile)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: NewGormLogger()})
	if err != nil {
		return nil, errors.Wrapf(err, "open db %s", dbPath)
	}

	if err := db.AutoMigrate(structs.Tables...); err != nil {
		return nil, errors.Wrap(err, "automigrate")
	}

	return &Store{db: db}, nil
}

// SetDecodeOptions 设置校验用的解码选项
func (s *Store) SetDecodeOptions(opt decoder.Options) {
	s.opt = opt
}

// Put 校验并写入文档，同名文档覆盖，返回解码结果
func (s *Store) Put(name string, body string) (*jsonval.Value, error) {
	v, err := decoder.DecodeWithOptions(body, s.opt)
	if err != nil {
		logger.Warn("reject document %s: %v", name, err)
		return nil, errors.Wrapf(err, "document %q is not valid JSON", name)
	}

	var doc structs.Documents
	res := s.db.Where("name = ?", name).First(&doc)
	if res.Error != nil {
		if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(res.Error, "lookup document %q", name)
		}
		doc = structs.Documents{Name: name, Body: body}
		if err := s.db.Create(&doc).Error; err != nil {
			return nil, errors.Wrapf(err, "create document %q", name)
		}
		return v, nil
	}

	doc.Body = body
	if err := s.db.Save(&doc).Error; err != nil {
		return nil, errors.Wrapf(err, "update document %q", name)
	}
	return v, nil
}

// Get 读取文档原文并重新解码
func (s *Store) Get(name string) (string, *jsonval.Value, error) {
	var doc structs.Documents
	if err := s.db.Where("name = ?", name).First(&doc).Error; err != nil {
		return "", nil, errors.Wrapf(err, "get document %q", name)
	}
	v, err := decoder.DecodeWithOptions(doc.Body, s.opt)
	if err != nil {
		// 库里只存校验过的文档，解不开说明数据被外部改坏
		return doc.Body, nil, errors.Wrapf(err, "stored document %q corrupted", name)
	}
	return doc.Body, v, nil
}

// List 按名字典序列出全部文档名
func (s *Store) List() ([]string, error) {
	var names []string
	if err := s.db.Model(&structs.Documents{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "list documents")
	}
	return names, nil
}

// Delete 删除文档
func (s *Store) Delete(name string) error {
	res := s.db.Where("name = ?", name).Delete(&structs.Documents{})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete document %q", name)
	}
	if res.RowsAffected == 0 {
		return errors.Errorf("document %q not found", name)
	}
	return nil
}
