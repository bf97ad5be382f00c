package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type booking struct {
	userID     string
	hospitalID string
	doctorID   string
}

func (e *testEnv) seedBooking(t *testing.T) booking {
	t.Helper()
	user := e.registerUser(t, "asha@example.com")
	hospital := e.registerHospital(t, "clinic@example.com", "ENT", nil, nil)
	return booking{userID: user.ID, hospitalID: hospital.Hospital.ID, doctorID: hospital.Doctor.ID}
}

func (e *testEnv) book(t *testing.T, b booking) *dto.AppointmentResponse {
	t.Helper()
	appt, err := e.appointments.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID: b.userID, HospitalID: b.hospitalID, DoctorID: b.doctorID, Problem: "ear pain", PreferredTime: "morning",
	})
	require.NoError(t, err)
	return appt
}

func TestCreateAppointment_RequiresAllIDs(t *testing.T) {
	env := newTestEnv(t)
	b := env.seedBooking(t)
	ctx := context.Background()

	cases := []*dto.CreateAppointmentRequest{
		{HospitalID: b.hospitalID, DoctorID: b.doctorID},
		{UserID: b.userID, DoctorID: b.doctorID},
		{UserID: b.userID, HospitalID: b.hospitalID},
	}
	for _, req := range cases {
		_, err := env.appointments.Create(ctx, req)
		assert.ErrorIs(t, err, ErrMissingIDs)
	}

	appt := env.book(t, b)
	assert.Equal(t, string(entity.AppointmentStatusBooked), appt.Status)
	assert.Equal(t, "ear pain", appt.Problem)
	assert.WithinDuration(t, testNow, appt.CreatedAt, time.Second)
}

func TestCreateAppointment_UnknownReference(t *testing.T) {
	env := newTestEnv(t)
	b := env.seedBooking(t)

	_, err := env.appointments.Create(context.Background(), &dto.CreateAppointmentRequest{
		UserID: b.userID, HospitalID: b.hospitalID, DoctorID: "no-such-doctor",
	})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestTransition_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	for _, status := range []entity.AppointmentStatus{
		entity.AppointmentStatusInConsultation,
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
	} {
		_, err := env.appointments.Transition(context.Background(), "missing", status)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	}
}

func TestTransition_IgnoresPriorStatus(t *testing.T) {
	env := newTestEnv(t)
	appt := env.book(t, env.seedBooking(t))
	ctx := context.Background()

	sequence := []entity.AppointmentStatus{
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusInConsultation,
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusCancelled,
	}
	for _, target := range sequence {
		got, err := env.appointments.Transition(ctx, appt.ID, target)
		require.NoError(t, err)
		assert.Equal(t, string(target), got.Status)
		assert.Equal(t, "Asha", got.UserName)
	}
}

func TestTransition_RejectsUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	appt := env.book(t, env.seedBooking(t))

	_, err := env.appointments.Transition(context.Background(), appt.ID, entity.AppointmentStatusBooked)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = env.appointments.Transition(context.Background(), appt.ID, "Rescheduled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_FiltersAreCombined(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.seedBooking(t)
	other := env.registerHospital(t, "other@example.com", "Eye", nil, nil)

	first := env.book(t, b)
	env.book(t, booking{userID: b.userID, hospitalID: other.Hospital.ID, doctorID: other.Doctor.ID})

	all, err := env.appointments.List(ctx, &dto.AppointmentListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byUser, err := env.appointments.List(ctx, &dto.AppointmentListQuery{UserID: b.userID})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byBoth, err := env.appointments.List(ctx, &dto.AppointmentListQuery{UserID: b.userID, DoctorID: b.doctorID})
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, first.ID, byBoth[0].ID)
	assert.Equal(t, "asha@example.com", byBoth[0].UserEmail)
	assert.Equal(t, "9999999999", byBoth[0].UserMobile)

	none, err := env.appointments.List(ctx, &dto.AppointmentListQuery{HospitalID: other.Hospital.ID, DoctorID: b.doctorID})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestList_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	b := env.seedBooking(t)

	older := env.book(t, b)
	newer := env.book(t, b)
	env.backdate(t, older.ID, testNow.Add(-time.Hour))

	list, err := env.appointments.List(context.Background(), &dto.AppointmentListQuery{DoctorID: b.doctorID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestListToday_ExcludesBackdated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.seedBooking(t)

	today := env.book(t, b)
	earlyToday := env.book(t, b)
	yesterday := env.book(t, b)
	tomorrow := env.book(t, b)

	env.backdate(t, earlyToday.ID, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	env.backdate(t, yesterday.ID, time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC))
	env.backdate(t, tomorrow.ID, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))

	list, err := env.appointments.ListToday(ctx, &dto.AppointmentListQuery{HospitalID: b.hospitalID})
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{today.ID, earlyToday.ID}, ids)
}

func TestListToday_UsesClockZoneDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	env := newTestEnvAt(t, time.Date(2024, 6, 1, 10, 0, 0, 0, ist))
	ctx := context.Background()
	b := env.seedBooking(t)

	now := env.book(t, b)
	afterMidnight := env.book(t, b)
	beforeMidnight := env.book(t, b)
	nextDay := env.book(t, b)

	// 01:30 IST on June 1 is still May 31 in UTC.
	env.backdate(t, afterMidnight.ID, time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC))
	env.backdate(t, beforeMidnight.ID, time.Date(2024, 5, 31, 23, 59, 0, 0, ist))
	env.backdate(t, nextDay.ID, time.Date(2024, 6, 2, 0, 0, 0, 0, ist))

	list, err := env.appointments.ListToday(ctx, &dto.AppointmentListQuery{HospitalID: b.hospitalID})
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{now.ID, afterMidnight.ID}, ids)
}

func TestCreate_StoresCreatedAtInUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	clockNow := time.Date(2024, 6, 1, 10, 0, 0, 0, ist)
	env := newTestEnvAt(t, clockNow)
	b := env.seedBooking(t)

	created := env.book(t, b)

	var stored entity.Appointment
	require.NoError(t, env.db.First(&stored, "id = ?", created.ID).Error)
	assert.True(t, stored.CreatedAt.Equal(clockNow))
	assert.Equal(t, time.UTC, created.CreatedAt.Location())
}

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	from, to := dayBounds(time.Date(2024, 6, 1, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, loc), to)
}
