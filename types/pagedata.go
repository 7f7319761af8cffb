package types

import (
	errs "errors"
)

type DashboardPageData struct {
	User         *User
	Config       Config
	Boards       []Board
	CurrentBoard Board
	Notes        []Note
	Colors       []Choice
	Tags         []Choice
	Flashes      []string
	CSRFToken    string
	Err          error
}

func NewDashboardPageData(cfg Config) *DashboardPageData {
	return &DashboardPageData{
		Config: cfg,
		Colors: Colors,
		Tags:   TagChoices,
	}
}

func (d *DashboardPageData) WithError(err error) *DashboardPageData {
	d.Err = errs.Join(d.Err, err)
	return d
}

func (d *DashboardPageData) WithUser(u User) *DashboardPageData {
	d.User = &u
	return d
}

func (d *DashboardPageData) WithBoards(boards []Board, current Board) *DashboardPageData {
	d.Boards = append(d.Boards, boards...)
	d.CurrentBoard = current
	return d
}

func (d *DashboardPageData) WithNotes(notes []Note) *DashboardPageData {
	d.Notes = append(d.Notes, notes...)
	return d
}

func (d *DashboardPageData) WithFlashes(flashes []string) *DashboardPageData {
	d.Flashes = append(d.Flashes, flashes...)
	return d
}

func (d *DashboardPageData) WithCSRFToken(token string) *DashboardPageData {
	d.CSRFToken = token
	return d
}

type FormData struct {
	Errors    map[string]string
	Values    map[string]string
	CSRFToken string
}

func NewFormData() FormData {
	return FormData{
		Errors: map[string]string{},
		Values: map[string]string{},
	}
}

// WithValidationError records err against its field, or against "general"
// when err is not a ValidationError.
func (f FormData) WithValidationError(err error) FormData {
	var verr *ValidationError
	if errs.As(err, &verr) {
		f.Errors[verr.Field] = verr.Message
	} else {
		f.Errors["general"] = "Oops! It appears we have had an error"
	}
	return f
}

type ErrorPageData struct {
	Status  int
	Message string
}
