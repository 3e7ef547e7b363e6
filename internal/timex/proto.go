package timex

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// ToProto converts a nullable time to its wire form.
func ToProto(t *time.Time) *timestamppb.Timestamp {
	if t == nil || t.IsZero() {
		return nil
	}
	return timestamppb.New(*t)
}

// FromProto converts a wire timestamp back to a nullable time in UTC.
func FromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

// FormatProto renders a wire timestamp as a form date.
func FormatProto(ts *timestamppb.Timestamp) string {
	return FormatDate(FromProto(ts))
}
