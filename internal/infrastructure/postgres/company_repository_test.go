package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// users y companies comparten varios nombres de columna (id, name, email,
// status, created_at, updated_at): en el join de GetByUserID toda referencia
// sin calificar falla en PostgreSQL con "column reference is ambiguous".

func TestCompanyColumns_ConAliasCalificaTodas(t *testing.T) {
	cols := strings.Split(companyColumns("c"), ", ")
	require.Len(t, cols, 7)

	for _, col := range cols {
		qualified := strings.HasPrefix(col, "c.") || strings.HasPrefix(col, "COALESCE(c.")
		assert.True(t, qualified, "columna sin calificar en join: %s", col)
	}
}

func TestCompanyColumns_SinAliasQuedaDesnuda(t *testing.T) {
	assert.NotContains(t, companyColumns(""), ".", "sin alias no debe haber prefijos")
}
