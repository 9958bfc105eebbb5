package mysql

import (
	"context"
	"errors"

	applicantDomain "loan-origination/internal/domain/applicant"

	"gorm.io/gorm"
)

type ApplicantRepository struct{ db *gorm.DB }

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) GetByPhone(ctx context.Context, phone string) (*applicantDomain.Applicant, error) {
	var out applicantDomain.Applicant
	res := r.db.WithContext(ctx).
		Preload("CreditHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("issue_date ASC, id ASC")
		}).
		Where("phone = ?", phone).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, applicantDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ApplicantRepository) UpsertProfile(ctx context.Context, phone string, p applicantDomain.Profile) (*applicantDomain.Applicant, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing applicantDomain.Applicant
		res := tx.Where("phone = ?", phone).First(&existing)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return tx.Create(&applicantDomain.Applicant{Phone: phone, Profile: p}).Error
		}
		if res.Error != nil {
			return res.Error
		}
		existing.Profile = p
		return tx.Save(&existing).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByPhone(ctx, phone)
}

func (r *ApplicantRepository) AppendCreditEntry(ctx context.Context, phone string, e *applicantDomain.CreditEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner applicantDomain.Applicant
		res := tx.Where("phone = ?", phone).First(&owner)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return applicantDomain.ErrNotFound
		}
		if res.Error != nil {
			return res.Error
		}

		var count int64
		if err := tx.Model(&applicantDomain.CreditEntry{}).
			Where("loan_id = ?", e.LoanID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return applicantDomain.ErrDuplicateLoan
		}

		e.ApplicantID = owner.ID
		if err := tx.Create(e).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return applicantDomain.ErrDuplicateLoan
			}
			return err
		}
		return nil
	})
}
