package appointment

import "errors"

// ErrSlotConflict is returned by Repository.CreateAppointment when the
// store's (barber, hour) uniqueness constraint rejects the row.
var ErrSlotConflict = errors.New("appointment: slot already reserved")
