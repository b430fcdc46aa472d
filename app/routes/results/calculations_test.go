package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-management/app/models"
)

func TestGradeFromTotal(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		maxTotal int
		want     string
	}{
		{"topper band", 90, 100, "A+"},
		{"upper A", 85, 100, "A"},
		{"B+ band", 72, 100, "B+"},
		{"B band", 65, 100, "B"},
		{"C band", 50, 100, "C"},
		{"D band", 40, 100, "D"},
		{"fail", 0, 100, "F"},
		{"just below pass", 39, 100, "F"},
		{"zero max yields sentinel", 85, 0, "-"},
		{"zero total zero max", 0, 0, "-"},
		{"multi subject maximum", 170, 200, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeFromTotal(tt.total, tt.maxTotal))
		})
	}
}

func TestMarkColorClass(t *testing.T) {
	tests := []struct {
		name     string
		marks    string
		maxMarks int
		want     string
	}{
		{"topper", "95", 100, "mark-topper"},
		{"topper boundary", "90", 100, "mark-topper"},
		{"pass", "45", 100, "mark-pass"},
		{"pass boundary", "40", 100, "mark-pass"},
		{"fail", "10", 100, "mark-fail"},
		{"non-numeric has no class", "abc", 100, ""},
		{"empty has no class", "", 100, ""},
		{"whitespace tolerated", " 92 ", 100, "mark-topper"},
		{"zero max counts as fail", "50", 0, "mark-fail"},
		{"scaled maximum", "45", 50, "mark-topper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkColorClass(tt.marks, tt.maxMarks))
		})
	}
}

// Mirrors the end-to-end moderation scenario: two submissions, one
// approved and one declined, leave exactly one graded entry visible.
func TestGroupResults(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, GroupResults(nil))
	})

	t.Run("single approved mark", func(t *testing.T) {
		rows := []*models.ExamMark{
			{ExamID: 1, ExamName: "Midterm", MaxMarks: 100, SubjectName: "Math", Marks: 85},
		}
		exams := GroupResults(rows)
		require.Len(t, exams, 1)

		res := exams[0]
		assert.Equal(t, "Midterm", res.ExamName)
		assert.Equal(t, 85, res.Total)
		assert.Equal(t, "A", res.Grade)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Math", res.Items[0].Subject)
		assert.Equal(t, "mark-pass", res.Items[0].ColorClass)
	})

	t.Run("multiple subjects accumulate per exam", func(t *testing.T) {
		rows := []*models.ExamMark{
			{ExamID: 2, ExamName: "Final", MaxMarks: 100, SubjectName: "Math", Marks: 92},
			{ExamID: 2, ExamName: "Final", MaxMarks: 100, SubjectName: "Science", Marks: 78},
			{ExamID: 3, ExamName: "Quiz", MaxMarks: 50, SubjectName: "Art", Marks: 10},
		}
		exams := GroupResults(rows)
		require.Len(t, exams, 2)

		final := exams[0]
		assert.Equal(t, 2, final.ExamID)
		assert.Equal(t, 170, final.Total)
		// 170 out of 200 is 85 percent.
		assert.Equal(t, "A", final.Grade)
		assert.Equal(t, "mark-topper", final.Items[0].ColorClass)
		assert.Equal(t, "mark-pass", final.Items[1].ColorClass)

		quiz := exams[1]
		assert.Equal(t, 10, quiz.Total)
		assert.Equal(t, "F", quiz.Grade)
		assert.Equal(t, "mark-fail", quiz.Items[0].ColorClass)
	})

	t.Run("zero max marks yields no grade", func(t *testing.T) {
		rows := []*models.ExamMark{
			{ExamID: 4, ExamName: "Broken", MaxMarks: 0, SubjectName: "Math", Marks: 42},
		}
		exams := GroupResults(rows)
		require.Len(t, exams, 1)
		assert.Equal(t, "-", exams[0].Grade)
	})

	t.Run("exam order follows row order", func(t *testing.T) {
		rows := []*models.ExamMark{
			{ExamID: 9, ExamName: "Later", MaxMarks: 100, SubjectName: "Math", Marks: 40},
			{ExamID: 5, ExamName: "Earlier", MaxMarks: 100, SubjectName: "Math", Marks: 40},
			{ExamID: 9, ExamName: "Later", MaxMarks: 100, SubjectName: "Science", Marks: 40},
		}
		exams := GroupResults(rows)
		require.Len(t, exams, 2)
		assert.Equal(t, 9, exams[0].ExamID)
		assert.Equal(t, 5, exams[1].ExamID)
	})
}
