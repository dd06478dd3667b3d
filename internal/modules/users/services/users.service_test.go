package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"isti-portal-core/internal/app/config"
	"isti-portal-core/internal/infrastructure/database/postgres"
	"isti-portal-core/internal/infrastructure/mailer"
	auditsvc "isti-portal-core/internal/modules/audit/services"
	"isti-portal-core/internal/modules/users/dto"
	"isti-portal-core/internal/shared/apperr"
	"isti-portal-core/internal/shared/integrity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type fakeRow struct {
	vals []interface{}
	err  error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *bool:
			*d = r.vals[i].(bool)
		case *int:
			*d = r.vals[i].(int)
		case *string:
			*d = r.vals[i].(string)
		}
	}
	return nil
}

// fakeTx enregistre les écritures de la transaction ; les méthodes non
// stubées paniquent via l'interface embarquée.
type fakeTx struct {
	pgx.Tx
	emailExists bool
	maxSuffix   int
	failRole    string
	execSQL     []string
	execArgs    [][]interface{}
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	switch {
	case strings.Contains(sql, "email = $1"):
		return &fakeRow{vals: []interface{}{t.emailExists}}
	case strings.Contains(sql, "SUBSTRING"):
		return &fakeRow{vals: []interface{}{t.maxSuffix}}
	}
	return &fakeRow{err: pgx.ErrNoRows}
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	if t.failRole != "" && strings.Contains(sql, "utilisateur_role") && args[1] == t.failRole {
		return pgconn.CommandTag{}, errors.New("violation de contrainte")
	}
	t.execSQL = append(t.execSQL, sql)
	t.execArgs = append(t.execArgs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

type fakeTxManager struct {
	tx    *fakeTx
	calls int
}

func (m *fakeTxManager) WithTransaction(ctx context.Context, fn postgres.TxFunc) error {
	m.calls++
	return fn(m.tx)
}

type recordingInserter struct {
	docs []interface{}
}

func (r *recordingInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	r.docs = append(r.docs, document)
	return &mongo.InsertOneResult{}, nil
}

func newTestUsersService(mgr *fakeTxManager) (*UsersService, *recordingInserter) {
	inserter := &recordingInserter{}
	svc := &UsersService{
		tx:      mgr,
		checker: integrity.NewChecker(),
		audit:   auditsvc.NewRecorder(inserter, zap.NewNop()),
		mailer:  mailer.NewMailer(&config.Config{}, zap.NewNop()),
		now:     func() time.Time { return time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC) },
	}
	return svc, inserter
}

func validAddRequest() dto.AddRequest {
	return dto.AddRequest{
		Nom:        "Jean Dupont",
		Email:      "jean.dupont@isti.edu",
		MotDePasse: "motdepasse",
		Roles:      []string{"etudiant", "resp_classe"},
	}
}

func TestCreateDuplicateEmailRejectedWithoutMutation(t *testing.T) {
	mgr := &fakeTxManager{tx: &fakeTx{emailExists: true}}
	svc, inserter := newTestUsersService(mgr)

	err := svc.Create(context.Background(), "admin-1", validAddRequest())
	require.Error(t, err)

	message, ok := apperr.UserMessage(err)
	require.True(t, ok)
	assert.Contains(t, message, "utilise déjà l'email jean.dupont@isti.edu")

	// aucune écriture, aucun audit
	assert.Empty(t, mgr.tx.execSQL)
	assert.Empty(t, inserter.docs)
}

func TestCreateUserAndRolesInOneTransaction(t *testing.T) {
	mgr := &fakeTxManager{tx: &fakeTx{maxSuffix: 41}}
	svc, inserter := newTestUsersService(mgr)

	err := svc.Create(context.Background(), "admin-1", validAddRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, mgr.calls)

	// fiche puis rôles, dans l'ordre de l'énumération
	require.Len(t, mgr.tx.execSQL, 3)
	assert.Contains(t, mgr.tx.execSQL[0], "INSERT INTO utilisateur (")
	assert.Equal(t, "ISTI-2024-0042", mgr.tx.execArgs[0][1])
	assert.Contains(t, mgr.tx.execSQL[1], "utilisateur_role")
	assert.Equal(t, "resp_classe", mgr.tx.execArgs[1][1])
	assert.Equal(t, "etudiant", mgr.tx.execArgs[2][1])

	require.Len(t, inserter.docs, 1)
	entry, ok := inserter.docs[0].(auditsvc.Entry)
	require.True(t, ok)
	assert.Equal(t, "admin-1", entry.UserID)
	assert.Equal(t, "utilisateur", entry.TableCible)
	assert.Contains(t, entry.Action, "ISTI-2024-0042")
}

func TestCreateRoleFailureAbortsAndRecordsNoAudit(t *testing.T) {
	mgr := &fakeTxManager{tx: &fakeTx{failRole: "etudiant"}}
	svc, inserter := newTestUsersService(mgr)

	err := svc.Create(context.Background(), "admin-1", validAddRequest())
	require.Error(t, err)

	_, ok := apperr.UserMessage(err)
	assert.False(t, ok)
	assert.Empty(t, inserter.docs)
}

func TestCreateUnknownRoleRejected(t *testing.T) {
	mgr := &fakeTxManager{tx: &fakeTx{}}
	svc, inserter := newTestUsersService(mgr)

	req := validAddRequest()
	req.Roles = []string{"pirate"}
	err := svc.Create(context.Background(), "admin-1", req)
	require.Error(t, err)

	message, ok := apperr.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Un des rôles sélectionnés est invalide", message)
	assert.Equal(t, 0, mgr.calls)
	assert.Empty(t, inserter.docs)
}
