package repository

import (
	"taxpro-backend/internal/database/models"

	"gorm.io/gorm"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// Ensure PaymentRepository implements PaymentRepositoryInterface
var _ PaymentRepositoryInterface = (*PaymentRepository)(nil)

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create records a payment
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByProviderRef retrieves a payment by the provider's reference
func (r *PaymentRepository) GetByProviderRef(ref string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "provider_ref = ?", ref).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
