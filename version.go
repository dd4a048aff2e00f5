package stripe

// APIVersion is the Stripe-Version this runtime was built against.
const APIVersion = "2024-06-20"

// Version is the runtime version reported in the User-Agent header.
const Version = "0.4.0"
