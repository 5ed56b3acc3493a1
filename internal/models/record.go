// Package models defines the domain types for keepintouch.
package models

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/haldor/keepintouch/internal/apperr"
)

// TimeLayout is the fixed wall-clock format carried by every record.
// Second precision, no timezone.
const TimeLayout = "2006-01-02 15:04:05"

// LocalSender is the reserved sender name for the local user's own
// sent items.
const LocalSender = "Me"

// Record is one communication-log entry. Records are free-form JSON
// objects: beyond the fields a Schema requires, submitted fields are
// stored exactly as received.
type Record map[string]any

// Sender returns the record's sender name.
func (r Record) Sender() (string, bool) {
	s, ok := r["sender"].(string)
	return s, ok
}

// Timestamp parses the record's datetime field under TimeLayout.
func (r Record) Timestamp() (time.Time, error) {
	raw, ok := r["datetime"].(string)
	if !ok {
		return time.Time{}, fmt.Errorf("record has no datetime field")
	}
	ts, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w", raw, err)
	}
	return ts, nil
}

// Kind identifies one of the three communication services.
type Kind string

// Service kinds.
const (
	KindCalls Kind = "calls"
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
)

// Schema describes the record shape of one service: which fields are
// required, the enumerated type/direction domain, the public route
// names, and the wording used in messages and insights. One generic
// collect/list/analyze implementation is parameterized by it.
type Schema struct {
	Kind Kind

	// TypeField names the enumerated direction field ("log_type" for
	// calls, "type" for email and SMS). TypeValues lists its legal
	// values, received-side first.
	TypeField  string
	TypeValues []string

	// Required lists payload fields that must be present beyond
	// datetime, sender, and TypeField. Optional fields are validated
	// only when present.
	Required []string
	Optional []string

	// Route paths of the HTTP facade.
	CollectPath string
	ListPath    string
	AnalyzePath string

	// CollectedMessage is the success envelope message for a collect.
	// Verb is the past participle used in insight strings ("called").
	CollectedMessage string
	Verb             string
}

// Builtin schemas, one per service.
var (
	CallsSchema = Schema{
		Kind:             KindCalls,
		TypeField:        "log_type",
		TypeValues:       []string{"incoming", "outgoing"},
		CollectPath:      "/collect_call_log",
		ListPath:         "/get_call_logs",
		AnalyzePath:      "/analyze_call_logs",
		CollectedMessage: "Call log data collected successfully",
		Verb:             "called",
	}

	EmailSchema = Schema{
		Kind:             KindEmail,
		TypeField:        "type",
		TypeValues:       []string{"received", "sent"},
		Required:         []string{"subject", "body"},
		Optional:         []string{"attachments"},
		CollectPath:      "/collect_email",
		ListPath:         "/get_email_data",
		AnalyzePath:      "/analyze_emails",
		CollectedMessage: "Email data collected successfully",
		Verb:             "emailed",
	}

	SMSSchema = Schema{
		Kind:             KindSMS,
		TypeField:        "type",
		TypeValues:       []string{"received", "sent"},
		Required:         []string{"content"},
		CollectPath:      "/collect_sms",
		ListPath:         "/get_sms_data",
		AnalyzePath:      "/analyze_sms",
		CollectedMessage: "SMS data collected successfully",
		Verb:             "texted",
	}
)

// SchemaFor returns the builtin schema for kind.
func SchemaFor(kind Kind) (Schema, error) {
	switch kind {
	case KindCalls:
		return CallsSchema, nil
	case KindEmail:
		return EmailSchema, nil
	case KindSMS:
		return SMSSchema, nil
	}
	return Schema{}, fmt.Errorf("%w: unknown service kind %q", apperr.ErrNotFound, kind)
}

// Validate checks a record against the schema: every required field
// must be present, the datetime must parse under TimeLayout, and the
// type field must carry one of the enumerated values. Extra fields
// pass through untouched.
func (s Schema) Validate(r Record) error {
	keys := []*validation.KeyRules{
		validation.Key("datetime", validation.Required, validation.Date(TimeLayout)),
		validation.Key("sender"),
		validation.Key(s.TypeField, validation.Required, validation.In(toAnySlice(s.TypeValues)...)),
	}
	for _, f := range s.Required {
		keys = append(keys, validation.Key(f))
	}
	for _, f := range s.Optional {
		keys = append(keys, validation.Key(f).Optional())
	}
	return validation.Validate(map[string]any(r),
		validation.Map(keys...).AllowExtraKeys())
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
