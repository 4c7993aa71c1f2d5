package constants

// Имена обменников и очередей
const (
	LeadsExchange = "leads_events"
	LeadsQueue    = "lead_notifications"
)

// Ключи маршрутизации: leads.<тип лида>
const (
	RoutingKeyLeads        = "leads.*"
	RoutingKeyLeadViewing  = "leads.viewing"
	RoutingKeyLeadContact  = "leads.contact"
	RoutingKeyLeadCareer   = "leads.career"
)

// Топология повторов и "мертвых" сообщений
const (
	LeadsRetryExchange  = "lead_notifications_retry_dlx"
	LeadsRetryQueue     = "lead_notifications_retry"
	LeadsFinalDLX       = "lead_notifications_final_dlx"
	LeadsFinalDLQ       = "lead_notifications_final_dlq"
	LeadsFinalDLQKey    = "leads.dlq.key"
)
