package repository

import (
	"strings"

	"github.com/google/uuid"
)

var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// AmenityID derives a stable point id from airport and name, so reseeding overwrites.
func AmenityID(scope, name string) string {
	key := strings.ToUpper(strings.TrimSpace(scope)) + ":" + strings.ToLower(strings.TrimSpace(name))
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}
