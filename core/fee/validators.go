package fee

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/schoolfees/core"
)

var (
	academicYearTag   = "academicyear"
	academicYearText  = "academic year must look like 2024-2025"
	academicYearRegex = regexp.MustCompile(`^([0-9]{4})-([0-9]{4})$`)

	frequencyTag  = "frequency"
	frequencyText = "invalid frequency"

	routeRequiredTag   = "route_required"
	hostelRequiredTag  = "hostel_required"
	routeRequiredText  = "this field is required for bus fees"
	hostelRequiredText = "this field is required for hostel fees"
)

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(academicYearTag, academicYearValidation)
	core.RegisterCustomTranslation(academicYearTag, academicYearText)

	_ = core.Validate.RegisterValidation(frequencyTag, frequencyValidation)
	core.RegisterCustomTranslation(frequencyTag, frequencyText)

	core.Validate.RegisterStructValidation(newFeeStructValidation, NewFee{})
	core.RegisterCustomTranslation(routeRequiredTag, routeRequiredText)
	core.RegisterCustomTranslation(hostelRequiredTag, hostelRequiredText)
}

// ValidAcademicYear checks that s is "YYYY-YYYY" with consecutive years.
func ValidAcademicYear(s string) bool {
	m := academicYearRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return end == start+1
}

// Custom Validators

func academicYearValidation(fl validator.FieldLevel) bool {
	return ValidAcademicYear(fl.Field().String())
}

func frequencyValidation(fl validator.FieldLevel) bool {
	freq := fl.Field().String()
	for _, f := range Frequencies {
		if f == freq {
			return true
		}
	}
	return false
}

// newFeeStructValidation checks the fields required by the fee kind.
func newFeeStructValidation(sl validator.StructLevel) {
	nf, ok := sl.Current().Interface().(NewFee)
	if !ok {
		return
	}
	switch nf.Kind {
	case KindBus:
		if nf.Route == "" {
			sl.ReportError(nf.Route, "route", "Route", routeRequiredTag, "")
		}
	case KindHostel:
		if nf.Hostel == "" {
			sl.ReportError(nf.Hostel, "hostel", "Hostel", hostelRequiredTag, "")
		}
	}
}
