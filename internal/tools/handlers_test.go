package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/phuquy-28/onboarding-chatbot/internal/store"
)

// fixedNow keeps the urgency window deterministic against the seed data.
var fixedNow = func() time.Time {
	return time.Date(2025, 10, 25, 10, 0, 0, 0, time.UTC)
}

func testRegistry(t *testing.T) (*Registry, *store.Store) {
	t.Helper()
	db := store.New()
	return NewDefaultRegistry(db, fixedNow), db
}

func exec(t *testing.T, r *Registry, name, args string) Result {
	t.Helper()
	return r.Execute(context.Background(), name, args)
}

func TestGetEmployeeInfo(t *testing.T) {
	r, _ := testRegistry(t)

	res := exec(t, r, "get_employee_info", `{"employee_identifier":"E123"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	emp, ok := res.Data["data"].(store.Employee)
	if !ok {
		t.Fatalf("expected an employee payload, got %T", res.Data["data"])
	}
	if emp.EmployeeID != "E123" {
		t.Fatalf("expected E123, got %s", emp.EmployeeID)
	}

	// Name substring resolves to the same record.
	res = exec(t, r, "get_employee_info", `{"employee_identifier":"văn an"}`)
	if !res.Success {
		t.Fatalf("expected name resolution to succeed, got %q", res.Error)
	}
	if got := res.Data["data"].(store.Employee); got.EmployeeID != "E123" {
		t.Fatalf("expected E123 by name, got %s", got.EmployeeID)
	}
}

func TestUnknownIdentifierNamesIt(t *testing.T) {
	r, _ := testRegistry(t)

	for _, tool := range []string{
		"get_employee_info", "get_onboarding_tasks", "check_urgent_tasks",
		"get_team_meetings", "get_next_task", "get_leave_balance",
	} {
		res := exec(t, r, tool, `{"employee_identifier":"ZZZ"}`)
		if res.Success {
			t.Fatalf("%s: expected failure for ZZZ", tool)
		}
		if !strings.Contains(res.Error, "ZZZ") {
			t.Fatalf("%s: error should contain the identifier: %q", tool, res.Error)
		}
	}
}

func TestGetOnboardingTasks(t *testing.T) {
	r, _ := testRegistry(t)

	res := exec(t, r, "get_onboarding_tasks", `{"employee_identifier":"E123"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	tasks := res.Data["data"].([]store.Task)
	if len(tasks) != 5 || res.Data["total_tasks"] != 5 {
		t.Fatalf("expected 5 tasks, got %d (total %v)", len(tasks), res.Data["total_tasks"])
	}
	doneCount := 0
	for _, task := range tasks {
		if task.Status == store.StatusDone {
			doneCount++
		}
	}
	if doneCount != 1 {
		t.Fatalf("expected exactly 1 done task, got %d", doneCount)
	}

	// Case-insensitive status filter.
	res = exec(t, r, "get_onboarding_tasks", `{"employee_identifier":"E123","status_filter":"pending"}`)
	tasks = res.Data["data"].([]store.Task)
	if len(tasks) != 4 {
		t.Fatalf("expected 4 pending tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Status != store.StatusPending {
			t.Fatalf("filter leaked a %s task", task.Status)
		}
	}
}

func TestUpdateTaskStatusFlow(t *testing.T) {
	r, _ := testRegistry(t)

	res := exec(t, r, "update_task_status", `{"task_id":"T01","new_status":"Done"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if res.Data["old_status"] != store.StatusPending {
		t.Fatalf("expected old status Pending, got %v", res.Data["old_status"])
	}
	if task := res.Data["task"].(store.Task); task.Status != store.StatusDone {
		t.Fatalf("expected task marked Done, got %s", task.Status)
	}

	// The pending list no longer includes T01.
	res = exec(t, r, "get_onboarding_tasks", `{"employee_identifier":"E123","status_filter":"Pending"}`)
	for _, task := range res.Data["data"].([]store.Task) {
		if task.TaskID == "T01" {
			t.Fatalf("T01 should no longer be pending")
		}
	}

	// Unknown task id is a failure, not a silent no-op.
	res = exec(t, r, "update_task_status", `{"task_id":"T99","new_status":"Done"}`)
	if res.Success || !strings.Contains(res.Error, "T99") {
		t.Fatalf("expected a not-found failure naming T99, got %+v", res)
	}

	// Status outside the enum is rejected before touching the store.
	res = exec(t, r, "update_task_status", `{"task_id":"T03","new_status":"Finished"}`)
	if res.Success {
		t.Fatalf("expected rejection of an invalid status")
	}
}

func TestSendIntroductionMessage(t *testing.T) {
	r, _ := testRegistry(t)

	res := exec(t, r, "send_introduction_message", `{"employee_identifier":"E123","recipient_type":"buddy"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	recipient := res.Data["recipient"].(map[string]any)
	if recipient["name"] != "Trần Văn Cường" {
		t.Fatalf("expected the buddy as recipient, got %v", recipient["name"])
	}
	if recipient["email"] != "cuong.tran@fsoft.com.vn" {
		t.Fatalf("wrong recipient email: %v", recipient["email"])
	}

	res = exec(t, r, "send_introduction_message", `{"employee_identifier":"E123","recipient_type":"manager"}`)
	recipient = res.Data["recipient"].(map[string]any)
	if recipient["name"] != "Lê Thị Bình" {
		t.Fatalf("expected the manager as recipient, got %v", recipient["name"])
	}

	res = exec(t, r, "send_introduction_message", `{"employee_identifier":"E123","recipient_type":"ceo"}`)
	if res.Success {
		t.Fatalf("expected rejection of an unknown recipient type")
	}
}

func TestCheckUrgentTasks(t *testing.T) {
	r, _ := testRegistry(t)

	res := exec(t, r, "check_urgent_tasks", `{"employee_identifier":"E123"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	urgent := res.Data["urgent_tasks"].([]store.UrgentTask)
	if len(urgent) != 3 || res.Data["count"] != 3 {
		t.Fatalf("expected 3 urgent tasks at the fixed clock, got %d", len(urgent))
	}
	for _, u := range urgent {
		if u.Status != store.StatusPending {
			t.Fatalf("urgent list contains a %s task", u.Status)
		}
		if u.DaysLeft < 0 || u.DaysLeft > UrgentWindowDays {
			t.Fatalf("days_left %d outside the window", u.DaysLeft)
		}
	}
}

func TestGetTeamMeetings(t *testing.T) {
	r, _ := testRegistry(t)

	res := exec(t, r, "get_team_meetings", `{"employee_identifier":"E123"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if res.Data["team_name"] != "Phoenix" {
		t.Fatalf("expected team Phoenix, got %v", res.Data["team_name"])
	}
	if meetings := res.Data["meetings"].([]store.Meeting); len(meetings) == 0 {
		t.Fatalf("expected a meeting schedule")
	}
	if res.Data["employee_name"] != "Nguyễn Văn An" {
		t.Fatalf("expected the employee name in the payload")
	}
}

func TestGetNextTaskOrdering(t *testing.T) {
	r, _ := testRegistry(t)

	// E789 pending: T10 High 10-27, T11 Medium 10-29, T12 High 10-24.
	// High priority wins, earliest due date breaks the tie.
	res := exec(t, r, "get_next_task", `{"employee_identifier":"E789"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	next := res.Data["next_task"].(store.Task)
	if next.TaskID != "T12" {
		t.Fatalf("expected T12 (High, earliest due), got %s", next.TaskID)
	}
	if res.Data["remaining_count"] != 3 {
		t.Fatalf("expected 3 remaining, got %v", res.Data["remaining_count"])
	}
}

func TestGetNextTaskAllDone(t *testing.T) {
	r, db := testRegistry(t)

	for _, id := range []string{"T10", "T11", "T12"} {
		if _, ok := db.UpdateTaskStatus(id, store.StatusDone); !ok {
			t.Fatalf("failed to mark %s done", id)
		}
	}

	res := exec(t, r, "get_next_task", `{"employee_identifier":"E789"}`)
	if !res.Success {
		t.Fatalf("an empty pending set is a success, got %q", res.Error)
	}
	if res.Data["next_task"] != nil {
		t.Fatalf("expected a nil next task, got %v", res.Data["next_task"])
	}
	if msg, _ := res.Data["message"].(string); !strings.Contains(msg, "Congratulations") {
		t.Fatalf("expected a congratulatory message, got %q", msg)
	}
}

func TestGetLeaveBalance(t *testing.T) {
	r, _ := testRegistry(t)

	res := exec(t, r, "get_leave_balance", `{"employee_identifier":"E123"}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	lb := res.Data["leave_balance"].(store.LeaveBalance)
	if lb.AnnualRemaining != 12 {
		t.Fatalf("expected 12 annual days remaining, got %d", lb.AnnualRemaining)
	}

	// E789 resolves but has no leave record yet: distinct failure.
	res = exec(t, r, "get_leave_balance", `{"employee_identifier":"E789"}`)
	if res.Success || !strings.Contains(res.Error, "E789") {
		t.Fatalf("expected a missing-record failure for E789, got %+v", res)
	}
}

func TestSearchTrainingCourses(t *testing.T) {
	r, db := testRegistry(t)

	res := exec(t, r, "search_training_courses", `{}`)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if res.Data["count"] != len(db.Courses()) {
		t.Fatalf("no-filter search should return the whole catalog")
	}

	res = exec(t, r, "search_training_courses", `{"keyword":"AI"}`)
	courses := res.Data["courses"].([]store.Course)
	if len(courses) != 1 || courses[0].CourseID != "C02" {
		t.Fatalf("expected the AI course, got %+v", courses)
	}

	// No hits is still a success, with a message instead of courses.
	res = exec(t, r, "search_training_courses", `{"keyword":"quantum basket weaving"}`)
	if !res.Success || res.Data["count"] != 0 {
		t.Fatalf("expected an empty success, got %+v", res)
	}
	if msg, _ := res.Data["message"].(string); !strings.Contains(msg, "quantum basket weaving") {
		t.Fatalf("message should echo the keyword, got %q", msg)
	}
}
