package store

// seed loads the demo onboarding dataset: three new hires with their task
// lists, team records, leave balances, and the training catalog. E789 has
// no leave record yet; HR provisions those after the first week.
func seed(s *Store) {
	s.addEmployee(Employee{
		EmployeeID:   "E123",
		Name:         "Nguyễn Văn An",
		Email:        "an.nguyen@fsoft.com.vn",
		Phone:        "+84 98 765 4321",
		Manager:      "Lê Thị Bình",
		ManagerEmail: "binh.le@fsoft.com.vn",
		ManagerPhone: "+84 91 234 5678",
		ManagerTeams: "https://teams.microsoft.com/l/chat/binh.le",
		Buddy:        "Trần Văn Cường",
		BuddyEmail:   "cuong.tran@fsoft.com.vn",
		BuddyPhone:   "+84 93 456 7890",
		BuddyTeams:   "https://teams.microsoft.com/l/chat/cuong.tran",
		Department:   "Software Development",
		StartDate:    "2025-10-20",
		Position:     "Software Engineer",
		TeamName:     "Phoenix",
	})
	s.addEmployee(Employee{
		EmployeeID:   "E456",
		Name:         "Đặng Phú Quý",
		Email:        "quy.dang@fsoft.com.vn",
		Phone:        "+84 97 654 3210",
		Manager:      "Phạm Văn Dũng",
		ManagerEmail: "dung.pham@fsoft.com.vn",
		ManagerPhone: "+84 92 345 6789",
		ManagerTeams: "https://teams.microsoft.com/l/chat/dung.pham",
		Buddy:        "Vũ Thị Em",
		BuddyEmail:   "em.vu@fsoft.com.vn",
		BuddyPhone:   "+84 94 567 8901",
		BuddyTeams:   "https://teams.microsoft.com/l/chat/em.vu",
		Department:   "Quality Assurance",
		StartDate:    "2025-10-21",
		Position:     "QA Engineer",
		TeamName:     "Falcon",
	})
	s.addEmployee(Employee{
		EmployeeID:   "E789",
		Name:         "Hoàng Thị Giang",
		Email:        "giang.hoang@fsoft.com.vn",
		Phone:        "+84 96 543 2109",
		Manager:      "Ngô Văn Hùng",
		ManagerEmail: "hung.ngo@fsoft.com.vn",
		ManagerPhone: "+84 90 123 4567",
		ManagerTeams: "https://teams.microsoft.com/l/chat/hung.ngo",
		Buddy:        "Đỗ Thị Lan",
		BuddyEmail:   "lan.do@fsoft.com.vn",
		BuddyPhone:   "+84 95 678 9012",
		BuddyTeams:   "https://teams.microsoft.com/l/chat/lan.do",
		Department:   "Business Analysis",
		StartDate:    "2025-10-22",
		Position:     "Business Analyst",
		TeamName:     "Kingfisher",
	})

	s.tasks["E123"] = []Task{
		{TaskID: "T01", Task: "Complete the Security Awareness course", Description: "Open the Learning Portal and finish the information-security course", DueDate: "2025-10-25", Status: StatusPending, Priority: PriorityHigh},
		{TaskID: "T02", Task: "Meet your Buddy", Description: "Meet and get to know your assigned Buddy", DueDate: "2025-10-22", Status: StatusDone, Priority: PriorityHigh},
		{TaskID: "T03", Task: "Set up the dev environment", Description: "Install VS Code, Git and Docker following the setup guide", DueDate: "2025-10-27", Status: StatusPending, Priority: PriorityMedium},
		{TaskID: "T04", Task: "Read the project documentation", Description: "Read the technical documentation of your assigned project", DueDate: "2025-10-30", Status: StatusPending, Priority: PriorityMedium},
		{TaskID: "T05", Task: "Complete Code of Conduct training", Description: "Study and sign off on the company code of conduct", DueDate: "2025-10-26", Status: StatusPending, Priority: PriorityHigh},
	}
	s.tasks["E456"] = []Task{
		{TaskID: "T06", Task: "Complete the Security Awareness course", Description: "Open the Learning Portal and finish the information-security course", DueDate: "2025-10-26", Status: StatusPending, Priority: PriorityHigh},
		{TaskID: "T07", Task: "Read the ABC project documentation", Description: "Learn the testing workflow and test-case library of project ABC", DueDate: "2025-10-30", Status: StatusPending, Priority: PriorityMedium},
		{TaskID: "T08", Task: "Set up the test environment", Description: "Install Selenium, Postman and the other testing tools", DueDate: "2025-10-28", Status: StatusPending, Priority: PriorityHigh},
		{TaskID: "T09", Task: "Meet your Buddy", Description: "Meet and get to know your assigned Buddy", DueDate: "2025-10-23", Status: StatusDone, Priority: PriorityHigh},
	}
	s.tasks["E789"] = []Task{
		{TaskID: "T10", Task: "Complete the Security Awareness course", Description: "Open the Learning Portal and finish the information-security course", DueDate: "2025-10-27", Status: StatusPending, Priority: PriorityHigh},
		{TaskID: "T11", Task: "Learn the Agile process", Description: "Join the Scrum workshop and learn the Agile way of working", DueDate: "2025-10-29", Status: StatusPending, Priority: PriorityMedium},
		{TaskID: "T12", Task: "Meet the team and stakeholders", Description: "Attend the introduction meeting with the team and key stakeholders", DueDate: "2025-10-24", Status: StatusPending, Priority: PriorityHigh},
	}

	s.teams["Phoenix"] = Team{
		Name:         "Phoenix",
		Lead:         "Lê Thị Bình",
		LeadEmail:    "binh.le@fsoft.com.vn",
		MembersCount: 12,
		Meetings: []Meeting{
			{Name: "Daily Standup", Day: "Mon-Fri", Time: "09:00"},
			{Name: "Sprint Planning", Day: "Monday", Time: "14:00"},
			{Name: "Retrospective", Day: "Friday", Time: "16:00"},
		},
	}
	s.teams["Falcon"] = Team{
		Name:         "Falcon",
		Lead:         "Phạm Văn Dũng",
		LeadEmail:    "dung.pham@fsoft.com.vn",
		MembersCount: 8,
		Meetings: []Meeting{
			{Name: "Daily Standup", Day: "Mon-Fri", Time: "09:15"},
			{Name: "Test Review", Day: "Thursday", Time: "15:00"},
		},
	}
	s.teams["Kingfisher"] = Team{
		Name:         "Kingfisher",
		Lead:         "Ngô Văn Hùng",
		LeadEmail:    "hung.ngo@fsoft.com.vn",
		MembersCount: 6,
		Meetings: []Meeting{
			{Name: "Weekly Sync", Day: "Tuesday", Time: "10:00"},
			{Name: "Stakeholder Review", Day: "Friday", Time: "14:00"},
		},
	}

	s.leave["E123"] = LeaveBalance{AnnualTotal: 12, AnnualUsed: 0, AnnualRemaining: 12, SickTotal: 5, SickUsed: 0, SickRemaining: 5}
	s.leave["E456"] = LeaveBalance{AnnualTotal: 12, AnnualUsed: 1, AnnualRemaining: 11, SickTotal: 5, SickUsed: 0, SickRemaining: 5}

	s.courses = []Course{
		{CourseID: "C01", Name: "React Fundamentals", Type: "Technical", Category: "Frontend", Duration: "8h"},
		{CourseID: "C02", Name: "Introduction to AI", Type: "Technical", Category: "AI", Duration: "12h"},
		{CourseID: "C03", Name: "Effective Communication", Type: "Soft Skill", Category: "Communication", Duration: "4h"},
		{CourseID: "C04", Name: "Docker and Kubernetes Basics", Type: "Technical", Category: "DevOps", Duration: "10h"},
		{CourseID: "C05", Name: "Time Management", Type: "Soft Skill", Category: "Productivity", Duration: "3h"},
		{CourseID: "C06", Name: "Secure Coding Practices", Type: "Technical", Category: "Security", Duration: "6h"},
	}
}
