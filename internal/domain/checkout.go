package domain

// CheckoutStep identifies a stage of the checkout flow. The step is not
// stored anywhere; it is derived from the requested route and the cart
// state on every page load.
type CheckoutStep string

const (
	StepBag            CheckoutStep = "bag"
	StepIdentification CheckoutStep = "identification"
	StepPayment        CheckoutStep = "payment"
)

// CheckoutGuard decides whether a cart may enter a checkout step and,
// if not, where the user should be redirected instead.
//
// Rules:
//   - any step with an empty cart redirects to the storefront root
//   - payment without a bound shipping address falls back to identification
type CheckoutGuard struct{}

// Resolve returns the step the cart is actually allowed to be on and the
// redirect target ("" when the requested step is permitted).
func (CheckoutGuard) Resolve(requested CheckoutStep, summary *CartSummary) (CheckoutStep, string) {
	if summary == nil || len(summary.Items) == 0 {
		return StepBag, "/"
	}

	if requested == StepPayment && summary.Cart.ShippingAddressID == nil {
		return StepIdentification, "/cart/identification"
	}

	return requested, ""
}
