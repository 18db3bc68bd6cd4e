package fri

import (
	"strings"

	"urnik-backend/internal/htmlutil"
	"urnik-backend/internal/timetable"
)

const (
	typeClass      = "entry-type"
	teacherClass   = "link-teacher"
	classroomClass = "link-classroom"
	subjectTag     = "a"
)

// Fields are the textual parts of an entry. Each one is timetable.NotAvailable
// when its node is missing or empty.
type Fields struct {
	Subject   string
	Type      string
	Professor string
	Classroom string
}

// ExtractFields looks every field up independently so that one missing node
// never hides the others.
func ExtractFields(entry htmlutil.Node) Fields {
	subject, _ := entry.FindTag(subjectTag)
	kind, _ := entry.FindClass(typeClass)
	teacher, _ := entry.FindClass(teacherClass)
	classroom, _ := entry.FindClass(classroomClass)

	return Fields{
		Subject:   textOr(subject, nil),
		Type:      textOr(kind, stripSeparator),
		Professor: textOr(teacher, nil),
		Classroom: textOr(classroom, nil),
	}
}

// the type is rendered as "| LV", the separator is decoration.
func stripSeparator(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "|", ""))
}

func textOr(node htmlutil.Node, clean func(string) string) string {
	if node == nil {
		return timetable.NotAvailable
	}
	text := strings.TrimSpace(node.Text())
	if clean != nil {
		text = clean(text)
	}
	if text == "" {
		return timetable.NotAvailable
	}
	return text
}
