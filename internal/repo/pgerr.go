package repo

import "strings"

// 不依赖具体驱动的错误类型，按文案/SQLSTATE 判断，postgres/mysql/sqlite 通用
// （postgres: 23505 唯一冲突 / 23503 外键违反）

func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "23505")
}

func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "23503")
}
