package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

const (
	MsgRequired  = "This field is required."
	MsgBlank     = "This field may not be blank."
	maxTitleLen  = 255
	priceDigits  = 6
	pricePlaces  = 2
	minUnitPrice = 1

	// MaxQuantity is the largest cart-item quantity, the range of a smallint column.
	MaxQuantity = 32767
)

var maxUnitPrice = decimal.New(1, priceDigits-pricePlaces)

// fieldErrors collects messages per input field in request order.
type fieldErrors map[string][]string

func (fe fieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe fieldErrors) err(op string) error {
	if len(fe) == 0 {
		return nil
	}
	return apierr.Validation(op, fe)
}

func MinValueMessage(n int64) string {
	return fmt.Sprintf("Ensure this value is greater than or equal to %d.", n)
}

func MaxValueMessage(n int64) string {
	return fmt.Sprintf("Ensure this value is less than or equal to %d.", n)
}

func MaxLengthMessage(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}

// checkText validates an optional text input. A nil value is only an error when required.
func (fe fieldErrors) checkText(field string, v *string, required, allowBlank bool, maxLen int) {
	if v == nil {
		if required {
			fe.add(field, MsgRequired)
		}
		return
	}
	if !allowBlank && strings.TrimSpace(*v) == "" {
		fe.add(field, MsgBlank)
		return
	}
	if maxLen > 0 && utf8.RuneCountInString(*v) > maxLen {
		fe.add(field, MaxLengthMessage(maxLen))
	}
}

func (fe fieldErrors) checkPrice(field string, v *decimal.Decimal, required bool) {
	if v == nil {
		if required {
			fe.add(field, MsgRequired)
		}
		return
	}
	d := *v
	switch {
	case d.LessThan(decimal.NewFromInt(minUnitPrice)):
		fe.add(field, MinValueMessage(minUnitPrice))
	case !d.Round(pricePlaces).Equal(d):
		fe.add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", pricePlaces))
	case d.GreaterThanOrEqual(maxUnitPrice):
		fe.add(field, fmt.Sprintf("Ensure that there are no more than %d digits in total.", priceDigits))
	}
}

func (fe fieldErrors) checkMinInt(field string, v *int, required bool, min int64) {
	if v == nil {
		if required {
			fe.add(field, MsgRequired)
		}
		return
	}
	if int64(*v) < min {
		fe.add(field, MinValueMessage(min))
	}
}

// checkIntRange is checkMinInt with an inclusive upper bound.
func (fe fieldErrors) checkIntRange(field string, v *int, required bool, min, max int64) {
	if v == nil {
		if required {
			fe.add(field, MsgRequired)
		}
		return
	}
	switch n := int64(*v); {
	case n < min:
		fe.add(field, MinValueMessage(min))
	case n > max:
		fe.add(field, MaxValueMessage(max))
	}
}
