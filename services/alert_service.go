package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"chinetonusine-backend/models"
	"chinetonusine-backend/repositories"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// AlertService runs the daily platform health sweep. It raises alerts
// into the admin alert feed and, when an operator phone is configured,
// forwards critical ones over Twilio.
type AlertService struct {
	alerts    repositories.AlertsRepository
	documents repositories.DocumentsRepository
	orders    repositories.OrdersRepository
	suppliers repositories.SuppliersRepository
	client    *twilio.RestClient
}

func NewAlertService() *AlertService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &AlertService{
		alerts:    repositories.Alerts,
		documents: repositories.Documents,
		orders:    repositories.Orders,
		suppliers: repositories.Suppliers,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *AlertService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.RunSweep()
	})

	c.Start()
	log.Println("Alert scheduler started")
}

// RunSweep checks documents, orders and supplier ratings and raises one
// alert per finding.
func (s *AlertService) RunSweep() {
	log.Println("Starting platform alert sweep...")

	s.sweepPendingDocuments()
	s.sweepStaleOrders()
	s.sweepLowRatedSuppliers()

	log.Println("Platform alert sweep completed")
}

func (s *AlertService) sweepPendingDocuments() {
	pending := s.documents.List(repositories.DocumentFilter{Status: models.DocPending})
	if len(pending) == 0 {
		return
	}

	s.alerts.Add(
		models.AlertWarning,
		"documents",
		"Documents en attente de vérification",
		fmt.Sprintf("%d document(s) fournisseur attendent une vérification.", len(pending)),
		"scheduler",
	)
}

func (s *AlertService) sweepStaleOrders() {
	cutoff := time.Now().AddDate(0, 0, -7)

	stale := 0
	for _, o := range s.orders.List(repositories.OrderFilter{Status: models.OrderPending}) {
		if o.CreatedAt.Before(cutoff) {
			stale++
		}
	}
	if stale == 0 {
		return
	}

	s.alerts.Add(
		models.AlertWarning,
		"orders",
		"Commandes en attente depuis plus de 7 jours",
		fmt.Sprintf("%d commande(s) n'ont pas été confirmées depuis plus d'une semaine.", stale),
		"scheduler",
	)
}

func (s *AlertService) sweepLowRatedSuppliers() {
	for _, supplier := range s.suppliers.List(repositories.SupplierFilter{Status: models.SupplierActive}) {
		if supplier.ReviewCount == 0 || supplier.Rating >= 2.5 {
			continue
		}

		alert := s.alerts.Add(
			models.AlertCritical,
			"suppliers",
			"Note fournisseur critique",
			fmt.Sprintf("%s est noté %.1f/5, en dessous du seuil de qualité.", supplier.Name, supplier.Rating),
			"scheduler",
		)
		s.notifyOperator(alert)
	}
}

// notifyOperator forwards a critical alert to OPERATOR_PHONE. WhatsApp
// is used for E.164 numbers, SMS otherwise.
func (s *AlertService) notifyOperator(alert models.Alert) {
	operatorPhone := os.Getenv("OPERATOR_PHONE")
	if operatorPhone == "" {
		return
	}

	channel := "sms"
	to := operatorPhone
	if strings.HasPrefix(operatorPhone, "+") {
		to = "whatsapp:" + operatorPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(fmt.Sprintf("[ChineTonUsine] %s: %s", alert.Title, alert.Message))

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to notify operator %s: %v", operatorPhone, err)
	} else if resp.Sid != nil {
		log.Printf("Operator notified, SID: %s", *resp.Sid)
	} else {
		log.Printf("Operator notified, but no SID returned")
	}
}
