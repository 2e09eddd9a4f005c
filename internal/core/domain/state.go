package domain

// AppState is the aggregate root. It is persisted wholesale after every change.
type AppState struct {
	Transactions   []Transaction   `json:"transactions"`
	Members        []Member        `json:"members"`
	Matches        []Match         `json:"matches"`
	MonthlyReports []MonthlyReport `json:"monthlyReports"`
	AdminEmails    []string        `json:"adminEmails"`
	AccessHistory  []AccessRecord  `json:"accessHistory"`
	SystemPassword string          `json:"systemPassword"`
}

// StateDefaults holds the values used to back-fill a loaded state.
type StateDefaults struct {
	AdminEmails    []string
	SystemPassword string
}

// WithDefaults fills missing fields instead of rejecting the state.
func (s AppState) WithDefaults(d StateDefaults) AppState {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Members == nil {
		s.Members = []Member{}
	}
	if s.Matches == nil {
		s.Matches = []Match{}
	}
	if s.MonthlyReports == nil {
		s.MonthlyReports = []MonthlyReport{}
	}
	if s.AccessHistory == nil {
		s.AccessHistory = []AccessRecord{}
	}
	if len(s.AdminEmails) == 0 {
		s.AdminEmails = make([]string, 0, len(d.AdminEmails))
		for _, e := range d.AdminEmails {
			if n := NormalizeEmail(e); n != "" {
				s.AdminEmails = append(s.AdminEmails, n)
			}
		}
	}
	if s.SystemPassword == "" {
		s.SystemPassword = d.SystemPassword
	}
	return s
}

// FindTransaction looks a transaction up by id.
func (s AppState) FindTransaction(id string) (Transaction, bool) {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// FindMatch looks a match up by id.
func (s AppState) FindMatch(id string) (Match, bool) {
	for _, m := range s.Matches {
		if m.ID == id {
			return m, true
		}
	}
	return Match{}, false
}

// FindReport looks a report up by id.
func (s AppState) FindReport(id string) (MonthlyReport, bool) {
	for _, r := range s.MonthlyReports {
		if r.ID == id {
			return r, true
		}
	}
	return MonthlyReport{}, false
}

// FindReportByMonth looks a report up by month key.
func (s AppState) FindReportByMonth(month string) (MonthlyReport, bool) {
	for _, r := range s.MonthlyReports {
		if r.Month == month {
			return r, true
		}
	}
	return MonthlyReport{}, false
}
