package domain

// Action is a state transition. Every action is applied by Reduce, which never
// mutates the slices of the state it is given.
type Action interface {
	reduce(AppState) AppState
}

// Reduce applies a single action and returns the new state.
func Reduce(s AppState, a Action) AppState {
	if a == nil {
		return s
	}
	return a.reduce(s)
}

// ReduceAll applies actions in order.
func ReduceAll(s AppState, actions ...Action) AppState {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func prepend[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}

func appendCopy[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, v)
}

func replaceByID[T any](items []T, idOf func(T) string, v T) []T {
	out := make([]T, len(items))
	copy(out, items)
	id := idOf(v)
	for i := range out {
		if idOf(out[i]) == id {
			out[i] = v
		}
	}
	return out
}

func removeByID[T any](items []T, idOf func(T) string, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func transactionID(t Transaction) string { return t.ID }
func memberID(m Member) string           { return m.ID }
func matchID(m Match) string             { return m.ID }
func reportID(r MonthlyReport) string    { return r.ID }

// AddTransaction puts a transaction at the head of the ledger.
type AddTransaction struct{ Transaction Transaction }

func (a AddTransaction) reduce(s AppState) AppState {
	s.Transactions = prepend(s.Transactions, a.Transaction)
	return s
}

// UpdateTransaction replaces the transaction with the same id; no-op if absent.
type UpdateTransaction struct{ Transaction Transaction }

func (a UpdateTransaction) reduce(s AppState) AppState {
	s.Transactions = replaceByID(s.Transactions, transactionID, a.Transaction)
	return s
}

// DeleteTransaction removes a transaction by id.
type DeleteTransaction struct{ ID string }

func (a DeleteTransaction) reduce(s AppState) AppState {
	s.Transactions = removeByID(s.Transactions, transactionID, a.ID)
	return s
}

// AddMember appends a member to the roster.
type AddMember struct{ Member Member }

func (a AddMember) reduce(s AppState) AppState {
	s.Members = appendCopy(s.Members, a.Member)
	return s
}

// UpdateMember replaces the member with the same id; no-op if absent.
type UpdateMember struct{ Member Member }

func (a UpdateMember) reduce(s AppState) AppState {
	s.Members = replaceByID(s.Members, memberID, a.Member)
	return s
}

// DeleteMember removes a member by id. References to it are left dangling.
type DeleteMember struct{ ID string }

func (a DeleteMember) reduce(s AppState) AppState {
	s.Members = removeByID(s.Members, memberID, a.ID)
	return s
}

// AddMatch puts a match at the head of the match log.
type AddMatch struct{ Match Match }

func (a AddMatch) reduce(s AppState) AppState {
	s.Matches = prepend(s.Matches, a.Match)
	return s
}

// UpdateMatch replaces the match with the same id; no-op if absent.
type UpdateMatch struct{ Match Match }

func (a UpdateMatch) reduce(s AppState) AppState {
	s.Matches = replaceByID(s.Matches, matchID, a.Match)
	return s
}

// DeleteMatch removes a match by id.
type DeleteMatch struct{ ID string }

func (a DeleteMatch) reduce(s AppState) AppState {
	s.Matches = removeByID(s.Matches, matchID, a.ID)
	return s
}

// SaveReport archives a report, replacing any report for the same month.
type SaveReport struct{ Report MonthlyReport }

func (a SaveReport) reduce(s AppState) AppState {
	kept := make([]MonthlyReport, 0, len(s.MonthlyReports)+1)
	kept = append(kept, a.Report)
	for _, r := range s.MonthlyReports {
		if r.Month != a.Report.Month {
			kept = append(kept, r)
		}
	}
	s.MonthlyReports = kept
	return s
}

// DeleteReport removes a report by id.
type DeleteReport struct{ ID string }

func (a DeleteReport) reduce(s AppState) AppState {
	s.MonthlyReports = removeByID(s.MonthlyReports, reportID, a.ID)
	return s
}

// RecordAccess prepends an access record and trims the log to MaxAccessHistory.
type RecordAccess struct{ Record AccessRecord }

func (a RecordAccess) reduce(s AppState) AppState {
	history := prepend(s.AccessHistory, a.Record)
	if len(history) > MaxAccessHistory {
		history = history[:MaxAccessHistory]
	}
	s.AccessHistory = history
	return s
}

// AddAdminEmail adds a normalized email to the allow-list, ignoring duplicates.
type AddAdminEmail struct{ Email string }

func (a AddAdminEmail) reduce(s AppState) AppState {
	email := NormalizeEmail(a.Email)
	if email == "" || IsAdminEmail(s.AdminEmails, email) {
		return s
	}
	s.AdminEmails = appendCopy(s.AdminEmails, email)
	return s
}

// RemoveAdminEmail drops an email from the allow-list.
type RemoveAdminEmail struct{ Email string }

func (a RemoveAdminEmail) reduce(s AppState) AppState {
	email := NormalizeEmail(a.Email)
	out := make([]string, 0, len(s.AdminEmails))
	for _, e := range s.AdminEmails {
		if NormalizeEmail(e) != email {
			out = append(out, e)
		}
	}
	s.AdminEmails = out
	return s
}

// SetSystemPassword replaces the shared password. It is stored as given.
type SetSystemPassword struct{ Password string }

func (a SetSystemPassword) reduce(s AppState) AppState {
	s.SystemPassword = a.Password
	return s
}
