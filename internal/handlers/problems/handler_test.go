package problems

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Warn(string, ...interface{})  {}

type fakeProblemService struct {
	problems map[string]*domain.Problem
}

func (f *fakeProblemService) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	out := make([]*domain.Problem, 0, len(f.problems))
	for _, p := range f.problems {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProblemService) GetProblem(ctx context.Context, slug string) (*domain.Problem, error) {
	p, ok := f.problems[slug]
	if !ok {
		return nil, errs.ProblemNotFound
	}
	return p, nil
}

func newRouter() *mux.Router {
	svc := &fakeProblemService{problems: map[string]*domain.Problem{
		"two-sum": {
			Slug:       "two-sum",
			Title:      "Two Sum",
			Difficulty: domain.DifficultyEasy,
			Statement:  "Find the two indices.",
			Signature:  "def twoSum(nums, target):",
			TestCases: []domain.TestCase{
				{Input: map[string]interface{}{"nums": []interface{}{2.0, 7.0}, "target": 9.0}, Expected: []interface{}{0.0, 1.0}},
				{Input: map[string]interface{}{"nums": []interface{}{3.0, 3.0}, "target": 6.0}, Expected: []interface{}{0.0, 1.0}, Hidden: true},
			},
		},
	}}
	r := mux.NewRouter()
	NewProblemHandler(svc, testLogger{}).RegisterRoutes(r)
	return r
}

func TestListProblems(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/problems", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]ProblemSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["problems"], 1)
	assert.Equal(t, "two-sum", body["problems"][0].Slug)
}

func TestGetProblemHidesHiddenCases(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/problems/two-sum", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var detail ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Two Sum", detail.Title)
	assert.Len(t, detail.Examples, 1, "hidden cases must not leave the server")
}

func TestGetProblemNotFound(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/problems/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
