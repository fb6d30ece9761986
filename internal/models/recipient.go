package models

import "errors"

type RecipientKind string

const (
	RecipientNone        RecipientKind = ""
	RecipientUser        RecipientKind = "user"
	RecipientShareholder RecipientKind = "shareholder"
)

var ErrAmbiguousRecipient = errors.New("recipient is both a user and a shareholder")

// Recipient is the single target of a notification. The zero value targets
// nobody.
type Recipient struct {
	Kind RecipientKind
	ID   uint
}

func UserRecipient(id uint) Recipient {
	return Recipient{Kind: RecipientUser, ID: id}
}

func ShareholderRecipient(id uint) Recipient {
	return Recipient{Kind: RecipientShareholder, ID: id}
}

// NewRecipient builds a Recipient from the two nullable columns. Setting both
// is rejected.
func NewRecipient(userID, shareholderID *uint) (Recipient, error) {
	switch {
	case userID != nil && shareholderID != nil:
		return Recipient{}, ErrAmbiguousRecipient
	case userID != nil:
		return UserRecipient(*userID), nil
	case shareholderID != nil:
		return ShareholderRecipient(*shareholderID), nil
	}
	return Recipient{}, nil
}

func (r Recipient) IsNone() bool {
	return r.Kind == RecipientNone
}

// Column is the notifications column holding this kind of recipient.
func (r Recipient) Column() string {
	switch r.Kind {
	case RecipientUser:
		return "user_id"
	case RecipientShareholder:
		return "shareholder_id"
	}
	return ""
}

// Columns returns the user_id and shareholder_id values for this recipient.
// The column of the other kind is always nil.
func (r Recipient) Columns() (userID, shareholderID *uint) {
	id := r.ID
	switch r.Kind {
	case RecipientUser:
		return &id, nil
	case RecipientShareholder:
		return nil, &id
	}
	return nil, nil
}

// RecipientOf reads the recipient back from a stored notification.
func RecipientOf(n *Notification) Recipient {
	r, err := NewRecipient(n.UserID, n.ShareholderID)
	if err != nil {
		// Rows written outside this service may carry both; the user wins.
		return UserRecipient(*n.UserID)
	}
	return r
}
