// internal/repositories/mysql/util.go
package mysql

import "strings"

// likePrefix meng-escape wildcard LIKE lalu menambahkan "%" di akhir.
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
