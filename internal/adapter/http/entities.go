package http

import "loan-origination/internal/domain/applicant"

type profileReq struct {
	Age            int    `json:"age"             validate:"gte=0,lte=120"`
	MonthlyIncome  int64  `json:"monthly_income"  validate:"required,gt=0"`
	EmploymentType string `json:"employment_type" validate:"required,oneof=full_time freelance unemployed"`
	HasProperty    *bool  `json:"has_property"    validate:"required"`
}

func (r profileReq) toProfile() applicant.Profile {
	return applicant.Profile{
		Age:            r.Age,
		MonthlyIncome:  r.MonthlyIncome,
		EmploymentType: applicant.EmploymentType(r.EmploymentType),
		HasProperty:    *r.HasProperty,
	}
}

type userDataReq struct {
	Phone string `json:"phone" validate:"required,phone"`
	profileReq
}

type productReq struct {
	Name              string  `json:"name"                validate:"required,min=3,max=128"`
	MaxAmount         int64   `json:"max_amount"          validate:"required,gt=0"`
	TermDays          int     `json:"term_days"           validate:"required,gt=0"`
	InterestRateDaily float64 `json:"interest_rate_daily" validate:"required,gt=0"`
}
