package tools

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/phuquy-28/onboarding-chatbot/internal/store"
)

// UrgentWindowDays is the forward-looking window for deadline reminders.
const UrgentWindowDays = 2

// DefaultEmployeeID is the sentinel the model is told to use when the
// user says "me" or "my".
const DefaultEmployeeID = "E123"

const identifierDesc = "Employee code (e.g. 'E123') or employee name. If the user says 'me' or 'my', use the default employee ID 'E123'."

type handlers struct {
	db  *store.Store
	now func() time.Time
}

// DataTools builds the nine data-access tools over the given store. The
// clock is injectable so deadline windows are testable; pass nil for
// time.Now.
func DataTools(db *store.Store, now func() time.Time) []Tool {
	if now == nil {
		now = time.Now
	}
	h := &handlers{db: db, now: now}

	identifierOnly := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"employee_identifier": map[string]any{
				"type":        "string",
				"description": identifierDesc,
			},
		},
		"required": []string{"employee_identifier"},
	}

	return []Tool{
		{
			Name:        "get_employee_info",
			Description: "Get details about a new hire: name, email, manager, buddy, department and start date. Use when the user asks about personal info, their manager, buddy, or employee details.",
			Parameters:  identifierOnly,
			Run:         h.employeeInfo,
		},
		{
			Name:        "get_onboarding_tasks",
			Description: "List a new hire's onboarding tasks with description, due date, status and priority. Use when the user asks about tasks, to-dos, or their onboarding schedule.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"employee_identifier": map[string]any{
						"type":        "string",
						"description": identifierDesc,
					},
					"status_filter": map[string]any{
						"type":        "string",
						"enum":        []string{store.StatusPending, store.StatusDone},
						"description": "Filter tasks by status. Omit to list every task.",
					},
				},
				"required": []string{"employee_identifier"},
			},
			Run: h.onboardingTasks,
		},
		{
			Name:        "update_task_status",
			Description: "Update the status of an onboarding task. Use when the user reports a task as completed or wants to change a task's status.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"task_id": map[string]any{
						"type":        "string",
						"description": "Task ID (e.g. 'T01', 'T02'), taken from a previously shown task list.",
					},
					"new_status": map[string]any{
						"type":        "string",
						"enum":        []string{store.StatusDone, store.StatusPending},
						"description": "New status: 'Done' when completed, 'Pending' otherwise.",
					},
				},
				"required": []string{"task_id", "new_status"},
			},
			Run: h.updateTaskStatus,
		},
		{
			Name:        "send_introduction_message",
			Description: "Send an introduction message to the employee's buddy or manager via email/Teams. Use when the user wants to connect with their buddy or manager.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"employee_identifier": map[string]any{
						"type":        "string",
						"description": identifierDesc,
					},
					"recipient_type": map[string]any{
						"type":        "string",
						"enum":        []string{"buddy", "manager"},
						"description": "Who receives the message: 'buddy' or 'manager'.",
					},
				},
				"required": []string{"employee_identifier", "recipient_type"},
			},
			Run: h.sendIntroduction,
		},
		{
			Name:        "check_urgent_tasks",
			Description: "Check for tasks due soon (within 2 days). Use for proactive deadline reminders.",
			Parameters:  identifierOnly,
			Run:         h.urgentTasks,
		},
		{
			Name:        "get_team_meetings",
			Description: "Get the employee's team info and its recurring meeting schedule. Use when the user asks about their team, meetings, or teammates.",
			Parameters:  identifierOnly,
			Run:         h.teamMeetings,
		},
		{
			Name:        "get_next_task",
			Description: "Get the next task to work on (the highest-priority pending task). Use after the user completes a task to suggest what comes next.",
			Parameters:  identifierOnly,
			Run:         h.nextTask,
		},
		{
			Name:        "get_leave_balance",
			Description: "Get the employee's leave balance: annual leave, sick leave and usage. Use when the user asks how many leave days they have left.",
			Parameters:  identifierOnly,
			Run:         h.leaveBalance,
		},
		{
			Name:        "search_training_courses",
			Description: "Search training courses by keyword or course type. Use when the user asks about courses (React, AI, Soft Skill, ...) or training opportunities.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"keyword": map[string]any{
						"type":        "string",
						"description": "Search keyword (e.g. 'React', 'AI', 'Communication'). Matches course name and category.",
					},
					"course_type": map[string]any{
						"type":        "string",
						"enum":        []string{"Technical", "Soft Skill"},
						"description": "Course type filter. Omit to search every type.",
					},
				},
				"required": []string{},
			},
			Run: h.searchCourses,
		},
	}
}

// NewDefaultRegistry assembles the standard tool set: the format tool
// first, then the nine data tools over the given store.
func NewDefaultRegistry(db *store.Store, now func() time.Time) *Registry {
	r := NewRegistry(FormatTool())
	for _, t := range DataTools(db, now) {
		r.Register(t)
	}
	return r
}

// resolve turns the polymorphic identifier argument into an employee
// record: exact code first, case-insensitive name substring on a miss.
func (h *handlers) resolve(args Args) (store.Employee, Result, bool) {
	identifier := args.String("employee_identifier")
	emp, ok := h.db.Resolve(identifier)
	if !ok {
		return store.Employee{}, Failuref("no employee found with ID or name: %s", identifier), false
	}
	return emp, Result{}, true
}

func (h *handlers) employeeInfo(_ context.Context, args Args) Result {
	emp, fail, ok := h.resolve(args)
	if !ok {
		return fail
	}
	return Success(map[string]any{"data": emp})
}

func (h *handlers) onboardingTasks(_ context.Context, args Args) Result {
	emp, fail, ok := h.resolve(args)
	if !ok {
		return fail
	}
	tasks, ok := h.db.Tasks(emp.EmployeeID)
	if !ok {
		return Failuref("no onboarding tasks found for employee %s", emp.EmployeeID)
	}
	if filter := args.String("status_filter"); filter != "" {
		filtered := make([]store.Task, 0, len(tasks))
		for _, t := range tasks {
			if strings.EqualFold(t.Status, filter) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}
	return Success(map[string]any{
		"employee_id": emp.EmployeeID,
		"data":        tasks,
		"total_tasks": len(tasks),
	})
}

func (h *handlers) updateTaskStatus(_ context.Context, args Args) Result {
	taskID := args.String("task_id")
	status, ok := canonicalStatus(args.String("new_status"))
	if !ok {
		return Failuref("new_status must be '%s' or '%s'", store.StatusDone, store.StatusPending)
	}
	upd, ok := h.db.UpdateTaskStatus(taskID, status)
	if !ok {
		return Failuref("no task found with ID: %s", taskID)
	}
	return Success(map[string]any{
		"employee_id": upd.EmployeeID,
		"task":        upd.Task,
		"old_status":  upd.OldStatus,
	})
}

func (h *handlers) sendIntroduction(_ context.Context, args Args) Result {
	emp, fail, ok := h.resolve(args)
	if !ok {
		return fail
	}

	var name, email, teams string
	switch {
	case strings.EqualFold(args.String("recipient_type"), "buddy"):
		name, email, teams = emp.Buddy, emp.BuddyEmail, emp.BuddyTeams
	case strings.EqualFold(args.String("recipient_type"), "manager"):
		name, email, teams = emp.Manager, emp.ManagerEmail, emp.ManagerTeams
	default:
		return Failuref("recipient_type must be 'buddy' or 'manager'")
	}

	// Simulated side effect: no message actually leaves the process.
	return Success(map[string]any{
		"message": "Introduction sent to " + name,
		"recipient": map[string]any{
			"name":       name,
			"email":      email,
			"teams_link": teams,
		},
		"employee_name": emp.Name,
	})
}

func (h *handlers) urgentTasks(_ context.Context, args Args) Result {
	emp, fail, ok := h.resolve(args)
	if !ok {
		return fail
	}
	urgent := h.db.UrgentTasks(emp.EmployeeID, h.now(), UrgentWindowDays)
	if urgent == nil {
		urgent = []store.UrgentTask{}
	}
	return Success(map[string]any{
		"employee_id":  emp.EmployeeID,
		"urgent_tasks": urgent,
		"count":        len(urgent),
	})
}

func (h *handlers) teamMeetings(_ context.Context, args Args) Result {
	emp, fail, ok := h.resolve(args)
	if !ok {
		return fail
	}
	if emp.TeamName == "" {
		return Failuref("employee is not assigned to a team yet")
	}
	team, ok := h.db.Team(emp.TeamName)
	if !ok {
		return Failuref("no team record found for: %s", emp.TeamName)
	}
	return Success(map[string]any{
		"team_name":       team.Name,
		"team_lead":       team.Lead,
		"team_lead_email": team.LeadEmail,
		"members_count":   team.MembersCount,
		"meetings":        team.Meetings,
		"employee_name":   emp.Name,
	})
}

var priorityRank = map[string]int{
	store.PriorityHigh:   0,
	store.PriorityMedium: 1,
	store.PriorityLow:    2,
}

func (h *handlers) nextTask(_ context.Context, args Args) Result {
	emp, fail, ok := h.resolve(args)
	if !ok {
		return fail
	}
	tasks, ok := h.db.Tasks(emp.EmployeeID)
	if !ok {
		return Failuref("no onboarding tasks found for employee %s", emp.EmployeeID)
	}

	pending := make([]store.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == store.StatusPending {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return Success(map[string]any{
			"next_task": nil,
			"message":   "Congratulations! You have completed every onboarding task.",
		})
	}

	// Highest priority first, earliest due date breaks ties. ISO dates
	// compare correctly as strings.
	sort.SliceStable(pending, func(i, j int) bool {
		ri, rj := rankOf(pending[i].Priority), rankOf(pending[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return pending[i].DueDate < pending[j].DueDate
	})

	return Success(map[string]any{
		"next_task":       pending[0],
		"remaining_count": len(pending),
	})
}

func (h *handlers) leaveBalance(_ context.Context, args Args) Result {
	emp, fail, ok := h.resolve(args)
	if !ok {
		return fail
	}
	lb, ok := h.db.LeaveBalance(emp.EmployeeID)
	if !ok {
		return Failuref("no leave balance found for employee %s", emp.EmployeeID)
	}
	return Success(map[string]any{
		"employee_id":   emp.EmployeeID,
		"leave_balance": lb,
	})
}

func (h *handlers) searchCourses(_ context.Context, args Args) Result {
	keyword := args.String("keyword")
	courseType := args.String("course_type")

	courses := h.db.SearchCourses(keyword, courseType)
	if len(courses) == 0 {
		msg := "No training courses found"
		if keyword != "" {
			msg = "No training courses found for keyword '" + keyword + "'"
		}
		return Success(map[string]any{
			"courses": []store.Course{},
			"count":   0,
			"message": msg,
		})
	}
	return Success(map[string]any{
		"courses":        courses,
		"count":          len(courses),
		"search_keyword": keyword,
		"course_type":    courseType,
	})
}

func rankOf(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return 3
}

func canonicalStatus(s string) (string, bool) {
	switch {
	case strings.EqualFold(s, store.StatusDone):
		return store.StatusDone, true
	case strings.EqualFold(s, store.StatusPending):
		return store.StatusPending, true
	default:
		return "", false
	}
}
