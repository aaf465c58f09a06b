package repositories

import (
	"fmt"
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type MessagesRepository interface {
	Threads(supplierID string) []models.MessageThread
	ThreadMessages(threadID string) ([]models.Message, error)
	MarkThreadRead(threadID string) error
	Reply(threadID, body string) (*models.Message, error)
}

// Messages holds supplier/buyer conversations.
var Messages MessagesRepository = newMemoryMessages()

type memoryMessages struct {
	mu       sync.Mutex
	threads  []models.MessageThread
	messages map[string][]models.Message // by thread id
	nextID   int
}

func newMemoryMessages() *memoryMessages {
	threads, messages := seedMessages()
	return &memoryMessages{threads: threads, messages: messages, nextID: 100}
}

func (r *memoryMessages) Threads(supplierID string) []models.MessageThread {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.MessageThread
	for _, t := range r.threads {
		if t.SupplierID == supplierID {
			out = append(out, t)
		}
	}
	return out
}

func (r *memoryMessages) ThreadMessages(threadID string) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, ok := r.messages[threadID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]models.Message(nil), msgs...), nil
}

func (r *memoryMessages) MarkThreadRead(threadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.threads {
		if r.threads[i].ID == threadID {
			r.threads[i].UnreadCount = 0
			msgs := r.messages[threadID]
			for j := range msgs {
				msgs[j].Read = true
			}
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryMessages) Reply(threadID, body string) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.threads {
		if r.threads[i].ID != threadID {
			continue
		}
		r.nextID++
		msg := models.Message{
			ID:       fmt.Sprintf("msg-%03d", r.nextID),
			ThreadID: threadID,
			Sender:   "supplier",
			Body:     body,
			SentAt:   time.Now(),
			Read:     true,
		}
		r.messages[threadID] = append(r.messages[threadID], msg)
		r.threads[i].LastMessage = body
		r.threads[i].UpdatedAt = msg.SentAt
		return &msg, nil
	}
	return nil, ErrNotFound
}

func seedMessages() ([]models.MessageThread, map[string][]models.Message) {
	threads := []models.MessageThread{
		{
			ID: "thr-001", SupplierID: "sup-001", BuyerName: "Marie Dubois", BuyerCompany: "TechImport SARL",
			Subject:     "Délai de production chargeurs",
			LastMessage: "Pouvez-vous confirmer un départ usine avant le 15 ?",
			UnreadCount: 1, UpdatedAt: time.Now().AddDate(0, 0, -1),
		},
		{
			ID: "thr-002", SupplierID: "sup-001", BuyerName: "Paul Martin", BuyerCompany: "Distrimax",
			Subject:     "Échantillons batteries",
			LastMessage: "Échantillons bien reçus, merci.",
			UnreadCount: 0, UpdatedAt: time.Now().AddDate(0, 0, -6),
		},
		{
			ID: "thr-003", SupplierID: "sup-002", BuyerName: "Lucas Moreau", BuyerCompany: "ModeExpress",
			Subject:     "Grille de tailles t-shirts",
			LastMessage: "La grille EU est-elle disponible ?",
			UnreadCount: 2, UpdatedAt: time.Now().AddDate(0, 0, -2),
		},
	}
	messages := map[string][]models.Message{
		"thr-001": {
			{ID: "msg-001", ThreadID: "thr-001", Sender: "buyer", Body: "Bonjour, où en est la production de notre commande CTU-2025-1003 ?", SentAt: time.Now().AddDate(0, 0, -2), Read: true},
			{ID: "msg-002", ThreadID: "thr-001", Sender: "supplier", Body: "Bonjour, la production démarre lundi prochain.", SentAt: time.Now().AddDate(0, 0, -2), Read: true},
			{ID: "msg-003", ThreadID: "thr-001", Sender: "buyer", Body: "Pouvez-vous confirmer un départ usine avant le 15 ?", SentAt: time.Now().AddDate(0, 0, -1), Read: false},
		},
		"thr-002": {
			{ID: "msg-004", ThreadID: "thr-002", Sender: "buyer", Body: "Échantillons bien reçus, merci.", SentAt: time.Now().AddDate(0, 0, -6), Read: true},
		},
		"thr-003": {
			{ID: "msg-005", ThreadID: "thr-003", Sender: "buyer", Body: "Bonjour, vos t-shirts taillent-ils EU ou asiatique ?", SentAt: time.Now().AddDate(0, 0, -3), Read: false},
			{ID: "msg-006", ThreadID: "thr-003", Sender: "buyer", Body: "La grille EU est-elle disponible ?", SentAt: time.Now().AddDate(0, 0, -2), Read: false},
		},
	}
	return threads, messages
}
