package repositories

import (
	"sync"
	"time"

	"chinetonusine-backend/models"
)

type SupplierFilter struct {
	Query     string
	Status    string
	Country   string
	Category  string
	MinRating float64
}

// SupplierProfilePatch carries the fields a supplier may edit on its own
// profile. Nil fields are left untouched.
type SupplierProfilePatch struct {
	Description  *string
	ContactEmail *string
	Phone        *string
	Website      *string
	LogoURL      *string
}

type SuppliersRepository interface {
	List(filter SupplierFilter) []models.Supplier
	Get(id string) (*models.Supplier, error)
	SetStatus(id, status string) (*models.Supplier, error)
	UpdateProfile(id string, patch SupplierProfilePatch) (*models.Supplier, error)
}

// Suppliers is the process-wide supplier directory.
var Suppliers SuppliersRepository = &memorySuppliers{suppliers: seedSuppliers()}

type memorySuppliers struct {
	mu        sync.Mutex
	suppliers []models.Supplier
}

func (r *memorySuppliers) List(filter SupplierFilter) []models.Supplier {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Supplier
	for _, s := range r.suppliers {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.Country != "" && s.Country != filter.Country {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.MinRating > 0 && s.Rating < filter.MinRating {
			continue
		}
		if !matches(filter.Query, s.Name, s.City, s.Category, s.Description) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r *memorySuppliers) Get(id string) (*models.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.suppliers {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memorySuppliers) SetStatus(id, status string) (*models.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			r.suppliers[i].Status = status
			updated := r.suppliers[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memorySuppliers) UpdateProfile(id string, patch SupplierProfilePatch) (*models.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.suppliers {
		if r.suppliers[i].ID != id {
			continue
		}
		s := &r.suppliers[i]
		if patch.Description != nil {
			s.Description = *patch.Description
		}
		if patch.ContactEmail != nil {
			s.ContactEmail = *patch.ContactEmail
		}
		if patch.Phone != nil {
			s.Phone = *patch.Phone
		}
		if patch.Website != nil {
			s.Website = *patch.Website
		}
		if patch.LogoURL != nil {
			s.LogoURL = *patch.LogoURL
		}
		updated := *s
		return &updated, nil
	}
	return nil, ErrNotFound
}

func seedSuppliers() []models.Supplier {
	return []models.Supplier{
		{
			ID: "sup-001", Name: "Shenzhen Electro Manufacture Co.",
			Country: "Chine", City: "Shenzhen", Category: "Électronique",
			Description:  "Fabricant d'accessoires électroniques grand public, OEM/ODM.",
			ContactEmail: "contact@shenzhen-electro.example", Phone: "+86 755 0000 0000",
			Website: "https://shenzhen-electro.example",
			Rating:  4.6, ReviewCount: 182, ProductCount: 240,
			EstablishedYear: 2009, Verified: true, Status: models.SupplierActive,
			CreatedAt: time.Date(2023, time.June, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "sup-002", Name: "Guangzhou Textile Works",
			Country: "Chine", City: "Guangzhou", Category: "Textile",
			Description:  "Textile et confection, petites et grandes séries, marquage inclus.",
			ContactEmail: "sales@gztextile.example", Phone: "+86 20 1234 5678",
			Rating: 4.1, ReviewCount: 95, ProductCount: 130,
			EstablishedYear: 2014, Verified: true, Status: models.SupplierActive,
			CreatedAt: time.Date(2023, time.September, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "sup-003", Name: "Ningbo Precision Tools",
			Country: "Chine", City: "Ningbo", Category: "Outillage",
			Description:  "Outillage à main et accessoires d'atelier.",
			ContactEmail: "export@nbtools.example", Phone: "+86 574 0000 0000",
			Rating: 2.2, ReviewCount: 34, ProductCount: 75,
			EstablishedYear: 2017, Verified: false, Status: models.SupplierActive,
			CreatedAt: time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "sup-004", Name: "Yiwu Gift & Packaging",
			Country: "Chine", City: "Yiwu", Category: "Emballage",
			Description:  "Emballages cadeaux et packaging sur mesure.",
			ContactEmail: "hello@yiwupack.example", Phone: "+86 579 0000 0000",
			Rating: 0, ReviewCount: 0, ProductCount: 18,
			EstablishedYear: 2021, Verified: false, Status: models.SupplierPending,
			CreatedAt: time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC),
		},
	}
}
