package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentListAttachesCGPA(t *testing.T) {
	db := newTestStore()
	grades := NewGradeService(db, db, db, db, nil)
	svc := NewStudentService(db, db, grades, nil)

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "S001", students[0].ID)
	assert.InDelta(t, 6.7, students[0].CGPA, 1e-9)
	assert.InDelta(t, 53.0/7.0, students[1].CGPA, 1e-9)
}

func TestStudentListByCourse(t *testing.T) {
	db := newTestStore()
	grades := NewGradeService(db, db, db, db, nil)
	svc := NewStudentService(db, db, grades, nil)
	ctx := context.Background()

	enrolled, err := svc.ListByCourse(ctx, "CS201")
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "S001", enrolled[0].ID)

	none, err := svc.ListByCourse(ctx, "ZZ999")
	require.NoError(t, err)
	assert.Empty(t, none)
}
