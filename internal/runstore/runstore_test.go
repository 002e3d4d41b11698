package runstore

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen-workers/internal/common/config"
	apperrors "sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/tracker"
)

func sampleRun(id string, success bool) models.GenerationRun {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	run := models.GenerationRun{
		ID:           id,
		PresetID:     "bella",
		Mode:         models.ModeQuickstart,
		Tier:         "L2",
		Industry:     "restaurant",
		Path:         "assembly",
		ArtifactName: "bella-cucina-abc123",
		StartTime:    start,
		EndTime:      start.Add(1200 * time.Millisecond),
		Duration:     1200,
		Success:      success,
	}
	if success {
		run.Result = &models.RunResult{ProjectPath: "/p/bella", Pages: []string{"HomePage"}, PageCount: 1, Cost: 0.01}
	} else {
		run.Error = "backend down"
	}
	return run
}

var _ tracker.RunStore = (*RedisStore)(nil)
var _ tracker.RunStore = (*PostgresStore)(nil)
var _ tracker.Observer = (*ElasticIndexer)(nil)

func TestRedisStore_RoundTripInCompletionOrder(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	store := NewRedisStore(rdb, "")
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, sampleRun("r1", true)))
	require.NoError(t, store.Add(ctx, sampleRun("r2", false)))

	runs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r1", runs[0].ID)
	assert.Equal(t, "r2", runs[1].ID)
	assert.Equal(t, sampleRun("r1", true), runs[0])
	stored, err := mr.DB(0).List(DefaultRedisKey)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	s := tracker.Summarize(runs)
	assert.Equal(t, "50.0%", s.PassRate)

	require.NoError(t, store.Clear(ctx))
	runs, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRedisStore_CorruptRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	require.NoError(t, rdb.RPush(context.Background(), "runs", "{not json").Err())

	_, err := NewRedisStore(rdb, "runs").List(context.Background())

	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))
}

func TestRedisStore_CommandErrors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db, "runs")
	ctx := context.Background()

	mock.ExpectLRange("runs", 0, -1).SetErr(stderrors.New("connection reset"))
	_, err := store.List(ctx)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))
	assert.Contains(t, err.Error(), "connection reset")

	mock.ExpectDel("runs").SetErr(stderrors.New("readonly"))
	err = store.Clear(ctx)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AddListClear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store, err := NewPostgresStore(db, "")
	require.NoError(t, err)
	ctx := context.Background()
	run := sampleRun("r1", true)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO generation_runs (id, preset_id, success, duration_ms, completed_at, record)")).
		WithArgs("r1", "bella", true, int64(1200), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, store.Add(ctx, run))

	record, err := json.Marshal(run)
	require.NoError(t, err)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT record FROM generation_runs ORDER BY seq")).
		WillReturnRows(sqlmock.NewRows([]string{"record"}).AddRow(record))
	runs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run, runs[0])

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM generation_runs")).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.Clear(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_EmptyListIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store, err := NewPostgresStore(db, "runs")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT record FROM runs").WillReturnRows(sqlmock.NewRows([]string{"record"}))

	runs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestPostgresStore_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store, err := NewPostgresStore(db, "")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO generation_runs").WillReturnError(stderrors.New("duplicate key"))
	err = store.Add(context.Background(), sampleRun("r1", false))
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS generation_runs").WillReturnError(stderrors.New("permission denied"))
	err = store.EnsureSchema(context.Background())
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPostgresStore_RejectsBadTableName(t *testing.T) {
	_, err := NewPostgresStore(nil, "runs; DROP TABLE users")
	assert.True(t, apperrors.IsValidation(err))
}

type esRecorder struct {
	mu     sync.Mutex
	paths  []string
	bodies []map[string]interface{}
	status int
}

func (r *esRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)
	var doc map[string]interface{}
	_ = json.Unmarshal(body, &doc)

	r.mu.Lock()
	r.paths = append(r.paths, req.Method+" "+req.URL.Path)
	r.bodies = append(r.bodies, doc)
	status := r.status
	r.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusCreated
	}
	w.WriteHeader(status)
	if status >= 300 {
		_, _ = w.Write([]byte(`{"error":{"type":"mapper_parsing_exception"}}`))
		return
	}
	_, _ = w.Write([]byte(`{"result":"created","_id":"r1"}`))
}

func newES(t *testing.T, h http.Handler) *elasticsearch.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es
}

func TestElasticIndexer_IndexesRunByID(t *testing.T) {
	rec := &esRecorder{}
	idx := NewElasticIndexer(newES(t, rec), "")

	require.NoError(t, idx.RunCompleted(context.Background(), sampleRun("r1", true)))

	require.Len(t, rec.paths, 1)
	assert.Equal(t, "PUT /generation-runs/_doc/r1", rec.paths[0])
	doc := rec.bodies[0]
	assert.Equal(t, "bella", doc["presetId"])
	assert.Equal(t, 0.01, doc["cost"])
	assert.Equal(t, float64(1), doc["pageCount"])
}

func TestElasticIndexer_ErrorResponse(t *testing.T) {
	rec := &esRecorder{status: http.StatusBadRequest}
	idx := NewElasticIndexer(newES(t, rec), "runs")

	err := idx.RunCompleted(context.Background(), sampleRun("r1", false))

	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStore))
	assert.Contains(t, err.Error(), "mapper_parsing_exception")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.StoreConfig{}, Backends{})
	require.NoError(t, err)
	assert.IsType(t, &tracker.MemoryStore{}, s)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	s, err = Open(ctx, config.StoreConfig{Driver: DriverRedis}, Backends{Redis: rdb})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)

	_, err = Open(ctx, config.StoreConfig{Driver: DriverPostgres}, Backends{})
	assert.Error(t, err)

	_, err = Open(ctx, config.StoreConfig{Driver: "mongo"}, Backends{})
	assert.Error(t, err)
}

func TestOpen_PostgresMigrates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS generation_runs").WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := Open(context.Background(), config.StoreConfig{Driver: DriverPostgres}, Backends{Postgres: db})
	require.NoError(t, err)
	assert.IsType(t, &PostgresStore{}, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}
