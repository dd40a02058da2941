package notification

import "testing"

func TestNewNotification_Valid(t *testing.T) {
	ticketID := uint(9)
	n, err := NewNotification(1, &ticketID, "Ticket assigned", "A ticket was assigned to you")
	if err != nil {
		t.Fatalf("NewNotification() error = %v, want nil", err)
	}
	if n.SenderID() != 1 {
		t.Errorf("SenderID() = %d, want 1", n.SenderID())
	}
	if n.RecipientID() != 0 {
		t.Errorf("RecipientID() = %d, want 0 before addressing", n.RecipientID())
	}
	if n.TicketID() == nil || *n.TicketID() != 9 {
		t.Errorf("TicketID() = %v, want 9", n.TicketID())
	}
}

func TestNewNotification_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		senderID uint
		title    string
		message  string
	}{
		{"missing sender", 0, "t", "m"},
		{"empty title", 1, "", "m"},
		{"empty message", 1, "t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.senderID, nil, tt.title, tt.message)
			if err == nil {
				t.Error("NewNotification() error = nil, want error")
			}
		})
	}
}

func TestNotification_ForRecipient(t *testing.T) {
	template, err := NewNotification(1, nil, "t", "m")
	if err != nil {
		t.Fatalf("NewNotification() error = %v", err)
	}
	if err := template.SetID(5); err != nil {
		t.Fatalf("SetID() error = %v", err)
	}

	first := template.ForRecipient(10)
	second := template.ForRecipient(11)

	if first.ID() != 0 || second.ID() != 0 {
		t.Error("ForRecipient() must reset the clone's ID for a fresh insert")
	}
	if first.RecipientID() != 10 || second.RecipientID() != 11 {
		t.Errorf("recipients = (%d, %d), want (10, 11)", first.RecipientID(), second.RecipientID())
	}
	if template.RecipientID() != 0 {
		t.Error("ForRecipient() mutated the template")
	}
	if first.Title() != template.Title() || first.Message() != template.Message() {
		t.Error("ForRecipient() must carry the template content")
	}
}
