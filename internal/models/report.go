package models

// CourseRoster lists the students enrolled in one course, with catalog
// details merged in for display.
type CourseRoster struct {
	CourseCode    string   `json:"course_code"`
	CourseDetails string   `json:"course_details"`
	StudentIDs    []string `json:"student_ids"`
}

// GPABand labels one bucket of the fixed GPA distribution.
type GPABand string

// Distribution bands, best first. Thresholds are inclusive lower
// bounds: a 9.0 GPA lands in BandTop.
const (
	BandTop     GPABand = "A (9.0+)"
	BandHigh    GPABand = "B (8.0-8.9)"
	BandMiddle  GPABand = "C (7.0-7.9)"
	BandLow     GPABand = "D (6.0-6.9)"
	BandFailing GPABand = "F (<6.0)"
)

// GPABands enumerates the bands in display order.
var GPABands = []GPABand{BandTop, BandHigh, BandMiddle, BandLow, BandFailing}

// BandForGPA places a GPA into its distribution band.
func BandForGPA(gpa float64) GPABand {
	switch {
	case gpa >= 9:
		return BandTop
	case gpa >= 8:
		return BandHigh
	case gpa >= 7:
		return BandMiddle
	case gpa >= 6:
		return BandLow
	default:
		return BandFailing
	}
}
