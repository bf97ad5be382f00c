package entity

// DoctorSearchFilter narrows the doctor search. Used by the repository layer
// to avoid coupling with delivery DTOs.
type DoctorSearchFilter struct {
	Specialization string // case-insensitive substring
}

// AppointmentFilter selects appointments by any combination of owners.
// Empty fields are ignored.
type AppointmentFilter struct {
	UserID     string
	HospitalID string
	DoctorID   string
}

// IsEmpty reports whether no owner is set.
func (f AppointmentFilter) IsEmpty() bool {
	return f.UserID == "" && f.HospitalID == "" && f.DoctorID == ""
}
