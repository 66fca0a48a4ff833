package testutils

import "strings"

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах всегда меньше
// длины в байтах. Нужна тестам валидатора max_bytes: аватарка из эмодзи проходит
// по числу символов, но превышает байтовый лимит поля.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}
