// internals/features/home/notifications/service/reminder_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campustrack_backend/internals/constants"
	eventModel "campustrack_backend/internals/features/academics/events/model"
	notifModel "campustrack_backend/internals/features/home/notifications/model"
	userModel "campustrack_backend/internals/features/users/user/model"
	"campustrack_backend/internals/mailer"
)

// Jenis reminder event
type ReminderKind string

const (
	ReminderStartingSoon ReminderKind = "starting_soon"
	ReminderRegistration ReminderKind = "registration"
)

// reminderContent membentuk isi notifikasi reminder. String ini sekaligus
// kunci dedup: selama ada notifikasi yang memuat substring ini, event +
// jenis reminder tersebut dianggap sudah pernah dikirim.
func reminderContent(kind ReminderKind, title string) string {
	if kind == ReminderRegistration {
		return fmt.Sprintf("Registration reminder: %q", title)
	}
	return fmt.Sprintf("Event %q starting soon", title)
}

// alreadyDispatched: dedup GLOBAL per event+kind. Begitu satu notifikasi
// dengan substring yang sama ditemukan, SEMUA penerima dilewati — bukan
// per user. Konsekuensinya student baru yang bergabung setelah batch
// pertama tidak dapat reminder susulan untuk event yang sama.
func alreadyDispatched(db *gorm.DB, content string) (bool, error) {
	var exists bool
	err := db.Raw(
		`SELECT EXISTS(SELECT 1 FROM notifications WHERE notification_content LIKE ?)`,
		"%"+content+"%",
	).Scan(&exists).Error
	return exists, err
}

// DispatchEventReminders mengirim reminder untuk event yang mulai di dalam
// jendela [now, now+window]. Untuk jenis registration, hanya event yang
// pendaftarannya masih dibuka yang diproses. Mengembalikan jumlah
// notifikasi yang dibuat.
func DispatchEventReminders(db *gorm.DB, window time.Duration, kind ReminderKind) (int, error) {
	now := time.Now()

	var events []eventModel.EventModel
	if err := db.
		Where("event_date_from > ? AND event_date_from <= ?", now, now.Add(window)).
		Find(&events).Error; err != nil {
		return 0, err
	}

	created := 0
	for i := range events {
		event := &events[i]

		if kind == ReminderRegistration && !event.RegistrationOpen(now) {
			continue
		}

		content := reminderContent(kind, event.EventTitle)
		sent, err := alreadyDispatched(db, content)
		if err != nil {
			return created, err
		}
		if sent {
			continue
		}

		recipients, err := reminderRecipients(db, event)
		if err != nil {
			return created, err
		}
		if len(recipients) == 0 {
			continue
		}

		ids := make([]uuid.UUID, 0, len(recipients))
		emails := make([]string, 0, len(recipients))
		for j := range recipients {
			ids = append(ids, recipients[j].ID)
			emails = append(emails, recipients[j].Email)
		}

		NotifyUsers(db, ids, content, notifModel.NotificationTypeEvent, "event", "reminder", string(kind))
		mailer.SendBestEffortMany(emails, "Reminder: "+event.EventTitle, content)

		created += len(ids)
		log.Printf("[INFO] Reminder %s dikirim untuk event %q ke %d student", kind, event.EventTitle, len(ids))
	}
	return created, nil
}

// reminderRecipients mengikuti scope event: college = semua student aktif,
// department = hanya yang cocok
func reminderRecipients(db *gorm.DB, event *eventModel.EventModel) ([]userModel.UserModel, error) {
	q := db.Where("role = ? AND is_active = TRUE", constants.RoleStudent)
	if event.EventScope == eventModel.EventScopeDepartment && event.EventDepartment != nil {
		q = q.Where("department = ?", *event.EventDepartment)
	}
	var students []userModel.UserModel
	if err := q.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
