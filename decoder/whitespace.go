package decoder

// skipWS 跳过空格/制表/回车/换行，无空白时原样返回
func skipWS(s string) string {
	if len(s) == 0 || s[0] > 0x20 {
		// 快速路径
		return s
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return s[i:]
		}
	}
	return ""
}
