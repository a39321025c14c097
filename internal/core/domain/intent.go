package domain

// Intent is the classified purpose of a chat message, selecting which
// response-generation path runs.
type Intent string

const (
	IntentInvoiceContent       Intent = "INVOICE_CONTENT"
	IntentExchangeRateQuery    Intent = "EXCHANGE_RATE_QUERY"
	IntentBusinessBenefitQuery Intent = "BUSINESS_BENEFIT_QUERY"
	IntentStatisticsQuery      Intent = "STATISTICS_QUERY"
	IntentHelpQuery            Intent = "HELP_QUERY"
	IntentDefault              Intent = "DEFAULT"
)
