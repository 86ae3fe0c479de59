package tools

// The structs below exist to describe tool arguments; calls forward the raw
// argument map and never decode into them.

// DeliveryArgs are accepted by create_delivery_quote and create_delivery.
type DeliveryArgs struct {
	ExternalDeliveryID              string `json:"external_delivery_id" jsonschema:"required,description=Unique identifier for the delivery"`
	PickupAddress                   string `json:"pickup_address" jsonschema:"required,description=Pickup address"`
	PickupBusinessName              string `json:"pickup_business_name,omitempty" jsonschema:"description=Business name for pickup"`
	PickupPhoneNumber               string `json:"pickup_phone_number,omitempty" jsonschema:"description=Phone number for pickup"`
	PickupInstructions              string `json:"pickup_instructions,omitempty" jsonschema:"description=Special instructions for pickup"`
	PickupReferenceTag              string `json:"pickup_reference_tag,omitempty" jsonschema:"description=Reference shown to the Dasher at pickup"`
	DropoffAddress                  string `json:"dropoff_address" jsonschema:"required,description=Dropoff address"`
	DropoffBusinessName             string `json:"dropoff_business_name,omitempty" jsonschema:"description=Business name for dropoff"`
	DropoffPhoneNumber              string `json:"dropoff_phone_number,omitempty" jsonschema:"description=Phone number for dropoff"`
	DropoffInstructions             string `json:"dropoff_instructions,omitempty" jsonschema:"description=Special instructions for dropoff"`
	DropoffContactGivenName         string `json:"dropoff_contact_given_name,omitempty" jsonschema:"description=First name of the recipient"`
	DropoffContactFamilyName        string `json:"dropoff_contact_family_name,omitempty" jsonschema:"description=Last name of the recipient"`
	DropoffContactSendNotifications bool   `json:"dropoff_contact_send_notifications,omitempty" jsonschema:"description=Send SMS status updates to the recipient"`
	OrderValue                      int    `json:"order_value,omitempty" jsonschema:"description=Value of the order in cents"`
	Currency                        string `json:"currency,omitempty" jsonschema:"description=ISO 4217 currency code of the order"`
	Tip                             int    `json:"tip,omitempty" jsonschema:"description=Tip for the Dasher in cents"`
	PickupTime                      string `json:"pickup_time,omitempty" jsonschema:"description=Requested pickup time in RFC 3339 format"`
	DropoffTime                     string `json:"dropoff_time,omitempty" jsonschema:"description=Requested dropoff time in RFC 3339 format"`
	ContactlessDropoff              bool   `json:"contactless_dropoff,omitempty" jsonschema:"description=Leave the order at the door"`
	ActionIfUndeliverable           string `json:"action_if_undeliverable,omitempty" jsonschema:"description=What to do if the order cannot be delivered: return_to_pickup or dispose"`
	DropoffRequiresSignature        bool   `json:"dropoff_requires_signature,omitempty" jsonschema:"description=Require a signature at dropoff"`
}

// GetDeliveryArgs are accepted by get_delivery.
type GetDeliveryArgs struct {
	ExternalDeliveryID string `json:"external_delivery_id" jsonschema:"required,description=The delivery ID to retrieve"`
}

// CancelDeliveryArgs are accepted by cancel_delivery.
type CancelDeliveryArgs struct {
	ExternalDeliveryID string `json:"external_delivery_id" jsonschema:"required,description=The delivery ID to cancel"`
}

// AcceptQuoteArgs are accepted by accept_delivery_quote.
type AcceptQuoteArgs struct {
	ExternalDeliveryID string `json:"external_delivery_id" jsonschema:"required,description=The delivery ID of the quote to accept"`
	Tip                int    `json:"tip,omitempty" jsonschema:"description=Tip for the Dasher in cents"`
	DropoffPhoneNumber string `json:"dropoff_phone_number,omitempty" jsonschema:"description=Phone number for dropoff"`
}

// UpdateDeliveryArgs are accepted by update_delivery.
type UpdateDeliveryArgs struct {
	ExternalDeliveryID       string `json:"external_delivery_id" jsonschema:"required,description=The delivery ID to update"`
	PickupPhoneNumber        string `json:"pickup_phone_number,omitempty" jsonschema:"description=Phone number for pickup"`
	PickupInstructions       string `json:"pickup_instructions,omitempty" jsonschema:"description=Special instructions for pickup"`
	PickupReferenceTag       string `json:"pickup_reference_tag,omitempty" jsonschema:"description=Reference shown to the Dasher at pickup"`
	DropoffPhoneNumber       string `json:"dropoff_phone_number,omitempty" jsonschema:"description=Phone number for dropoff"`
	DropoffInstructions      string `json:"dropoff_instructions,omitempty" jsonschema:"description=Special instructions for dropoff"`
	PickupTime               string `json:"pickup_time,omitempty" jsonschema:"description=Requested pickup time in RFC 3339 format"`
	DropoffTime              string `json:"dropoff_time,omitempty" jsonschema:"description=Requested dropoff time in RFC 3339 format"`
	ContactlessDropoff       bool   `json:"contactless_dropoff,omitempty" jsonschema:"description=Leave the order at the door"`
	OrderValue               int    `json:"order_value,omitempty" jsonschema:"description=Value of the order in cents"`
	Tip                      int    `json:"tip,omitempty" jsonschema:"description=Tip for the Dasher in cents"`
	DropoffRequiresSignature bool   `json:"dropoff_requires_signature,omitempty" jsonschema:"description=Require a signature at dropoff"`
}
