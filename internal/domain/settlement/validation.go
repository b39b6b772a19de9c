package settlement

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("dec_gt0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
	_ = v.RegisterValidation("dec_gte0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !d.IsNegative()
	})
	return v
}

type createRules struct {
	ClaimID                 string          `json:"claim_id" validate:"required"`
	CreatedBy               string          `json:"created_by" validate:"required"`
	AssessedAmount          decimal.Decimal `json:"assessed_amount" validate:"dec_gt0"`
	Deductions              decimal.Decimal `json:"deductions" validate:"dec_gte0"`
	ServiceFeePercentage    decimal.Decimal `json:"service_fee_percentage" validate:"dec_gte0"`
	PaymentMethod           string          `json:"payment_method" validate:"omitempty,oneof=BANK_TRANSFER CHEQUE OTHER"`
	PaymentTimelineDays     int             `json:"payment_timeline_days" validate:"gte=0"`
	OfferValidityPeriodDays int             `json:"offer_validity_period_days" validate:"gte=0"`
	SpecialConditions       string          `json:"special_conditions" validate:"max=2000"`
}

type termsRules struct {
	PaymentMethod           string `json:"payment_method" validate:"omitempty,oneof=BANK_TRANSFER CHEQUE OTHER"`
	PaymentTimelineDays     int    `json:"payment_timeline_days" validate:"gte=0"`
	OfferValidityPeriodDays int    `json:"offer_validity_period_days" validate:"gte=0"`
	SpecialConditions       string `json:"special_conditions" validate:"max=2000"`
}

type submitRules struct {
	ClaimID                 string          `json:"claim_id" validate:"required"`
	AssessedAmount          decimal.Decimal `json:"assessed_amount" validate:"dec_gt0"`
	FinalAmount             decimal.Decimal `json:"final_amount" validate:"dec_gt0"`
	PaymentMethod           string          `json:"payment_method" validate:"required,oneof=BANK_TRANSFER CHEQUE OTHER"`
	PaymentTimelineDays     int             `json:"payment_timeline_days" validate:"gt=0"`
	OfferValidityPeriodDays int             `json:"offer_validity_period_days" validate:"gt=0"`
}

type reasonRules struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type presentationRules struct {
	ContactMethod string `json:"contact_method" validate:"required,oneof=EMAIL SMS PHONE_CALL PHYSICAL_DELIVERY"`
	SubjectLine   string `json:"subject_line" validate:"required,max=200"`
	CustomMessage string `json:"custom_message" validate:"max=5000"`
}

type responseRules struct {
	ResponseType string `json:"response_type" validate:"required,oneof=ACCEPTED REJECTED COUNTER_OFFER"`
	Comments     string `json:"comments" validate:"max=2000"`
}

type paymentRules struct {
	PaymentMethod        string `json:"payment_method" validate:"required,oneof=BANK_TRANSFER CHEQUE OTHER"`
	TransactionReference string `json:"transaction_reference" validate:"required,max=128"`
	BankName             string `json:"bank_name" validate:"required_if=PaymentMethod BANK_TRANSFER"`
	AccountNumber        string `json:"account_number" validate:"required_if=PaymentMethod BANK_TRANSFER"`
	AccountName          string `json:"account_name" validate:"required_if=PaymentMethod BANK_TRANSFER"`
	PaymentStatus        string `json:"payment_status" validate:"required,oneof=PENDING PROCESSING COMPLETED FAILED"`
	PaymentNotes         string `json:"payment_notes" validate:"max=2000"`
}

type documentRules struct {
	Name string `json:"document" validate:"required,max=255"`
}

type deliveryRules struct {
	DeliveryStatus string `json:"delivery_status" validate:"required,oneof=PENDING SENT DELIVERED FAILED"`
}

func validateStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "input", Rule: "invalid", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "dec_gt0":
		return "must be greater than 0"
	case "dec_gte0":
		return "must be greater than or equal to 0"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}
