package store

import (
	"strings"
	"sync"
	"time"
)

const (
	StatusPending = "Pending"
	StatusDone    = "Done"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Employee is a new-hire record including the manager and buddy contact
// triples. The JSON tags are the shape tool results carry to the model.
type Employee struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Manager      string `json:"manager"`
	ManagerEmail string `json:"manager_email"`
	ManagerPhone string `json:"manager_phone"`
	ManagerTeams string `json:"manager_teams"`
	Buddy        string `json:"buddy"`
	BuddyEmail   string `json:"buddy_email"`
	BuddyPhone   string `json:"buddy_phone"`
	BuddyTeams   string `json:"buddy_teams"`
	Department   string `json:"department"`
	StartDate    string `json:"start_date"`
	Position     string `json:"position"`
	TeamName     string `json:"team_name"`
}

type Task struct {
	TaskID      string `json:"task_id"`
	Task        string `json:"task"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"` // ISO date, YYYY-MM-DD
	Status      string `json:"status"`   // Pending | Done
	Priority    string `json:"priority"` // High | Medium | Low
}

// UrgentTask is a task annotated with the whole days remaining until its
// due date.
type UrgentTask struct {
	Task
	DaysLeft int `json:"days_left"`
}

// TaskUpdate reports a status mutation: which employee owned the task and
// what the status was before the write.
type TaskUpdate struct {
	EmployeeID string
	Task       Task
	OldStatus  string
}

type Meeting struct {
	Name string `json:"name"`
	Day  string `json:"day"`
	Time string `json:"time"`
}

type Team struct {
	Name         string    `json:"team_name"`
	Lead         string    `json:"lead"`
	LeadEmail    string    `json:"lead_email"`
	MembersCount int       `json:"members_count"`
	Meetings     []Meeting `json:"meetings"`
}

type LeaveBalance struct {
	AnnualTotal     int `json:"annual_leave_total"`
	AnnualUsed      int `json:"annual_leave_used"`
	AnnualRemaining int `json:"annual_leave_remaining"`
	SickTotal       int `json:"sick_leave_total"`
	SickUsed        int `json:"sick_leave_used"`
	SickRemaining   int `json:"sick_leave_remaining"`
}

type Course struct {
	CourseID string `json:"course_id"`
	Name     string `json:"name"`
	Type     string `json:"type"` // Technical | Soft Skill
	Category string `json:"category"`
	Duration string `json:"duration"`
}

// Store owns the process-wide onboarding tables. One coarse RWMutex guards
// every table; queries copy out so callers never hold references into
// shared slices.
type Store struct {
	mu        sync.RWMutex
	ids       []string // employee insertion order, for deterministic name search
	employees map[string]Employee
	tasks     map[string][]Task // employee id -> tasks
	teams     map[string]Team
	leave     map[string]LeaveBalance
	courses   []Course
}

// New returns a store populated with the seed dataset.
func New() *Store {
	s := &Store{
		employees: make(map[string]Employee),
		tasks:     make(map[string][]Task),
		teams:     make(map[string]Team),
		leave:     make(map[string]LeaveBalance),
	}
	seed(s)
	return s
}

func (s *Store) addEmployee(e Employee) {
	s.ids = append(s.ids, e.EmployeeID)
	s.employees[e.EmployeeID] = e
}

// Employee looks up a record by exact employee code.
func (s *Store) Employee(id string) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	return e, ok
}

// FindEmployeeByName returns the first employee whose full name contains
// the given text, case-insensitively, in insertion order.
func (s *Store) FindEmployeeByName(name string) (Employee, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Employee{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.ids {
		e := s.employees[id]
		if strings.Contains(strings.ToLower(e.Name), needle) {
			return e, true
		}
	}
	return Employee{}, false
}

// Resolve accepts the polymorphic employee identifier: exact code first,
// name substring only on a miss.
func (s *Store) Resolve(identifier string) (Employee, bool) {
	if e, ok := s.Employee(identifier); ok {
		return e, true
	}
	return s.FindEmployeeByName(identifier)
}

// Tasks returns a copy of the employee's task list. The second return is
// false when the employee has no task list at all.
func (s *Store) Tasks(employeeID string) ([]Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks, ok := s.tasks[employeeID]
	if !ok {
		return nil, false
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out, true
}

// UpdateTaskStatus scans every employee's list for the task id (ids are
// globally unique) and mutates the status in place. Setting the current
// status again is a no-op beyond reporting the old status.
func (s *Store) UpdateTaskStatus(taskID, newStatus string) (TaskUpdate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.ids {
		tasks := s.tasks[id]
		for i := range tasks {
			if tasks[i].TaskID != taskID {
				continue
			}
			old := tasks[i].Status
			tasks[i].Status = newStatus
			return TaskUpdate{EmployeeID: id, Task: tasks[i], OldStatus: old}, true
		}
	}
	return TaskUpdate{}, false
}

// UrgentTasks returns the employee's pending tasks due within windowDays
// of now, inclusive. The window is forward-looking: overdue tasks are not
// urgent, they are late. Now is truncated to the date so a task due today
// counts with zero days left.
func (s *Store) UrgentTasks(employeeID string, now time.Time, windowDays int) []UrgentTask {
	tasks, ok := s.Tasks(employeeID)
	if !ok {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := today.AddDate(0, 0, windowDays)

	var urgent []UrgentTask
	for _, t := range tasks {
		if t.Status != StatusPending {
			continue
		}
		due, err := time.ParseInLocation("2006-01-02", t.DueDate, now.Location())
		if err != nil {
			continue
		}
		if due.Before(today) || due.After(limit) {
			continue
		}
		urgent = append(urgent, UrgentTask{
			Task:     t,
			DaysLeft: int(due.Sub(today).Hours() / 24),
		})
	}
	return urgent
}

func (s *Store) Team(name string) (Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[name]
	return t, ok
}

func (s *Store) LeaveBalance(employeeID string) (LeaveBalance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lb, ok := s.leave[employeeID]
	return lb, ok
}

// Courses returns the whole catalog.
func (s *Store) Courses() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// SearchCourses filters the catalog. A keyword matches name or category,
// case-insensitively; a course type matches exactly (ignoring case). When
// both are given the filters are conjunctive.
func (s *Store) SearchCourses(keyword, courseType string) []Course {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	courseType = strings.TrimSpace(courseType)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Course
	for _, c := range s.courses {
		if courseType != "" && !strings.EqualFold(c.Type, courseType) {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(c.Name), keyword) &&
			!strings.Contains(strings.ToLower(c.Category), keyword) {
			continue
		}
		out = append(out, c)
	}
	return out
}
