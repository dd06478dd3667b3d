package integrity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueryer répond aux requêtes COUNT par table, et mémorise les clés
// reçues pour vérifier le paramètre passé aux règles
type fakeQueryer struct {
	counts map[string]int
	err    error
	keys   []string
}

type fakeRow struct {
	count int
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.count
	return nil
}

func (q *fakeQueryer) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	if len(args) > 0 {
		q.keys = append(q.keys, args[0].(string))
	}
	if q.err != nil {
		return fakeRow{err: q.err}
	}
	for table, count := range q.counts {
		if strings.Contains(sql, "FROM "+table) {
			return fakeRow{count: count}
		}
	}
	return fakeRow{}
}

func TestCheckAllowsWhenNoDependents(t *testing.T) {
	checker := NewChecker()
	q := &fakeQueryer{counts: map[string]int{}}

	err := checker.Check(context.Background(), q, EntityDepartement, "dep-1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"dep-1"}, q.keys)
}

func TestCheckBlocksOnFirstViolatedRule(t *testing.T) {
	checker := NewChecker()
	q := &fakeQueryer{counts: map[string]int{
		"inscription":  3,
		"enseignement": 2,
	}}

	err := checker.Check(context.Background(), q, EntityClasse, "cls-1")
	require.Error(t, err)

	var blocked *BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, EntityClasse, blocked.Entity)
	assert.Equal(t, 3, blocked.Count)
	assert.Equal(t, "impossible de supprimer : contient 3 inscription(s)", blocked.Error())

	// la première règle violée suffit, les suivantes ne sont pas évaluées
	assert.Equal(t, []string{"cls-1"}, q.keys)
}

func TestCheckUserResponsibilities(t *testing.T) {
	checker := NewChecker()
	q := &fakeQueryer{counts: map[string]int{"filiere": 1}}

	err := checker.Check(context.Background(), q, EntityUtilisateur, "usr-1")
	var blocked *BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Contains(t, blocked.Error(), "filière(s) sous responsabilité")
}

func TestCheckAnneeUsesGivenKey(t *testing.T) {
	checker := NewChecker()
	q := &fakeQueryer{counts: map[string]int{"inscription": 5}}

	err := checker.Check(context.Background(), q, EntityAnnee, "2024/2025")
	var blocked *BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 5, blocked.Count)
	assert.Equal(t, []string{"2024/2025"}, q.keys)
}

func TestCheckUnknownEntity(t *testing.T) {
	checker := NewChecker()
	q := &fakeQueryer{}

	err := checker.Check(context.Background(), q, "planete", "x")
	require.Error(t, err)
	var blocked *BlockedError
	assert.False(t, errors.As(err, &blocked))
}

func TestCheckQueryFailure(t *testing.T) {
	checker := NewChecker()
	q := &fakeQueryer{err: errors.New("connexion perdue")}

	err := checker.Check(context.Background(), q, EntityFiliere, "fil-1")
	require.Error(t, err)
	var blocked *BlockedError
	assert.False(t, errors.As(err, &blocked))
}

func TestCountDependentsSumsAllRules(t *testing.T) {
	checker := NewChecker()
	q := &fakeQueryer{counts: map[string]int{
		"inscription":  3,
		"enseignement": 2,
		"emploi_temps": 1,
	}}

	total, err := checker.CountDependents(context.Background(), q, EntityClasse, "cls-1")
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}
