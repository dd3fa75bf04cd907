package server

import (
	"sync"

	"github.com/abhisek/stresswatch/internal/engine"
	"github.com/abhisek/stresswatch/internal/roster"
)

// rosterStore holds the in-memory roster with its precomputed
// assessments and simulated trends. It is the serving cache, not a
// system of record; ingestion mutates it and publishes a re-score.
type rosterStore struct {
	mu          sync.RWMutex
	students    map[int]*roster.Student
	assessments map[int]*engine.Assessment
	trends      map[int][]roster.TrendPoint
	order       []int
}

func newRosterStore() *rosterStore {
	return &rosterStore{
		students:    make(map[int]*roster.Student),
		assessments: make(map[int]*engine.Assessment),
		trends:      make(map[int][]roster.TrendPoint),
	}
}

func (rs *rosterStore) replace(students []roster.Student, assessments []*engine.Assessment, trends map[int][]roster.TrendPoint) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.students = make(map[int]*roster.Student, len(students))
	rs.assessments = make(map[int]*engine.Assessment, len(students))
	rs.order = make([]int, 0, len(students))
	for i := range students {
		st := students[i]
		rs.students[st.ID] = &st
		rs.assessments[st.ID] = assessments[i]
		rs.order = append(rs.order, st.ID)
	}
	rs.trends = trends
}

func (rs *rosterStore) get(id int) (*roster.Student, *engine.Assessment, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	st, ok := rs.students[id]
	if !ok {
		return nil, nil, false
	}
	return st, rs.assessments[id], true
}

func (rs *rosterStore) trend(id int) []roster.TrendPoint {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.trends[id]
}

// all returns students and assessments in stable roster order.
func (rs *rosterStore) all() ([]*roster.Student, []*engine.Assessment) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	students := make([]*roster.Student, 0, len(rs.order))
	assessments := make([]*engine.Assessment, 0, len(rs.order))
	for _, id := range rs.order {
		students = append(students, rs.students[id])
		assessments = append(assessments, rs.assessments[id])
	}
	return students, assessments
}

func (rs *rosterStore) size() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.students)
}

// update applies fn to the student's raw record under the write lock and
// returns a copy of the updated student plus the assessment that was in
// place before the change. Re-scoring happens outside the lock; callers
// publish the result with setAssessment.
func (rs *rosterStore) update(id int, fn func(st *roster.Student)) (roster.Student, *engine.Assessment, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	st, ok := rs.students[id]
	if !ok {
		return roster.Student{}, nil, false
	}
	fn(st)
	return *st, rs.assessments[id], true
}

// setAssessment publishes a re-score. Under concurrent ingestion the
// stored assessment may briefly trail the raw record until the last
// re-score lands.
func (rs *rosterStore) setAssessment(id int, a *engine.Assessment) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if _, ok := rs.students[id]; ok {
		rs.assessments[id] = a
	}
}
