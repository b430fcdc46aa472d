package results

import (
	"strconv"
	"strings"

	"student-management/app/models"
)

// GradeFromTotal bands a total against the exam maximum. A zero
// maximum has no meaningful percentage and yields the "-" sentinel.
func GradeFromTotal(total, maxTotal int) string {
	if maxTotal == 0 {
		return "-"
	}
	perc := float64(total) / float64(maxTotal) * 100
	switch {
	case perc >= 90:
		return "A+"
	case perc >= 80:
		return "A"
	case perc >= 70:
		return "B+"
	case perc >= 60:
		return "B"
	case perc >= 50:
		return "C"
	case perc >= 40:
		return "D"
	}
	return "F"
}

// MarkColorClass classifies a single raw mark value for display.
// Non-numeric input gets no classification.
func MarkColorClass(marks string, maxMarks int) string {
	m, err := strconv.Atoi(strings.TrimSpace(marks))
	if err != nil {
		return ""
	}
	var perc float64
	if maxMarks != 0 {
		perc = float64(m) / float64(maxMarks) * 100
	}
	switch {
	case perc >= 90:
		return "mark-topper"
	case perc >= 40:
		return "mark-pass"
	}
	return "mark-fail"
}

// ResultItem is one approved subject mark inside an exam result.
type ResultItem struct {
	Subject    string `json:"subject"`
	Marks      int    `json:"marks"`
	ColorClass string `json:"color_class"`
}

// ExamResult groups a student's approved marks for one exam with the
// computed total and grade.
type ExamResult struct {
	ExamID   int          `json:"exam_id"`
	ExamName string       `json:"exam_name"`
	MaxMarks int          `json:"max_marks"`
	Items    []ResultItem `json:"items"`
	Total    int          `json:"total"`
	Grade    string       `json:"grade"`
}

// GroupResults folds approved mark rows into per-exam results,
// preserving the row order within each exam. Grading treats the exam's
// max marks as the per-subject maximum, so the exam total is max_marks
// times the number of subjects taken.
func GroupResults(rows []*models.ExamMark) []*ExamResult {
	var order []int
	byExam := make(map[int]*ExamResult)

	for _, r := range rows {
		res, ok := byExam[r.ExamID]
		if !ok {
			res = &ExamResult{
				ExamID:   r.ExamID,
				ExamName: r.ExamName,
				MaxMarks: r.MaxMarks,
			}
			byExam[r.ExamID] = res
			order = append(order, r.ExamID)
		}
		res.Items = append(res.Items, ResultItem{
			Subject:    r.SubjectName,
			Marks:      r.Marks,
			ColorClass: MarkColorClass(strconv.Itoa(r.Marks), r.MaxMarks),
		})
		res.Total += r.Marks
	}

	exams := make([]*ExamResult, 0, len(order))
	for _, eid := range order {
		res := byExam[eid]
		res.Grade = GradeFromTotal(res.Total, res.MaxMarks*len(res.Items))
		exams = append(exams, res)
	}
	return exams
}
