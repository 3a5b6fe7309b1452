package fee

import (
	"strings"
	"time"

	"github.com/trezcool/schoolfees/core"
	"github.com/trezcool/schoolfees/core/classorder"
)

// Kinds
const (
	KindClass  Kind = "class"
	KindBus    Kind = "bus"
	KindHostel Kind = "hostel"
)

// Frequencies
const (
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
	FrequencyOneTime   = "one_time"
)

var (
	Kinds       = []Kind{KindClass, KindBus, KindHostel}
	Frequencies = []string{FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyOneTime}

	kindPaths = map[Kind]string{
		KindClass:  "/class-fees",
		KindBus:    "/bus-fees",
		KindHostel: "/hostel-fees",
	}
)

type Kind string

// ParseKind accepts "class", "Bus", " hostel ".. and fails with ErrUnknownKind otherwise.
func ParseKind(s string) (Kind, error) {
	kind := Kind(core.CleanString(s, true /* lower */))
	if _, ok := kindPaths[kind]; !ok {
		return "", ErrUnknownKind
	}
	return kind, nil
}

// Path is the school backend endpoint listing fees of this kind.
func (k Kind) Path() string { return kindPaths[k] }

// Fee is a fee configured for a class during an academic year.
// Bus fees also name a Route, hostel fees a Hostel.
type Fee struct {
	ID           string    `json:"id"`
	Kind         Kind      `json:"kind"`
	ClassName    string    `json:"class_name"`
	AcademicYear string    `json:"academic_year"` // YYYY-YYYY
	Amount       int64     `json:"amount"`        // minor units
	Frequency    string    `json:"frequency"`
	Route        string    `json:"route,omitempty"`
	Hostel       string    `json:"hostel,omitempty"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

func (f Fee) Record() classorder.Record {
	return classorder.Record{ClassName: f.ClassName, AcademicYear: f.AcademicYear}
}

// Board holds class ordered fees of every kind.
type Board map[Kind][]Fee

// NewFee contains information needed to create a new Fee.
type NewFee struct {
	Kind         Kind   `json:"-"`
	ClassName    string `json:"class_name" validate:"required,notblank"`
	AcademicYear string `json:"academic_year" validate:"required,academicyear"`
	Amount       int64  `json:"amount" validate:"gt=0"`
	Frequency    string `json:"frequency" validate:"required,frequency"`
	Route        string `json:"route"`
	Hostel       string `json:"hostel"`
}

func (nf *NewFee) Validate() error {
	nf.ClassName = core.CleanString(nf.ClassName)
	nf.AcademicYear = core.CleanString(nf.AcademicYear)
	nf.Frequency = core.CleanString(nf.Frequency, true /* lower */)
	nf.Route = core.CleanString(nf.Route)
	nf.Hostel = core.CleanString(nf.Hostel)
	return core.Validate.Struct(nf)
}

type QueryFilter struct {
	AcademicYear string `query:"academic_year"`
	Search       string `query:"search"`
	Tier         string `query:"tier"` // eg. "LKG", "Class 5", "Unrecognized"
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.AcademicYear == "" && qf.Search == "" && qf.Tier == ""
}

func (qf *QueryFilter) Clean() {
	qf.AcademicYear = core.CleanString(qf.AcademicYear)
	qf.Search = core.CleanString(qf.Search, true /* lower */)
	qf.Tier = core.CleanString(qf.Tier)
}

// Match applies AND on the set fields. Search is a case-insensitive match on the class name.
func (qf *QueryFilter) Match(f Fee) bool {
	if qf.AcademicYear != "" && f.AcademicYear != qf.AcademicYear {
		return false
	}
	if qf.Search != "" && !strings.Contains(strings.ToLower(f.ClassName), qf.Search) {
		return false
	}
	if qf.Tier != "" && !strings.EqualFold(classorder.Classify(f.ClassName).Tier(), qf.Tier) {
		return false
	}
	return true
}
