package domain

// NotificationType categorizes issuer-facing notifications written by the
// batch processors. Operational failures are only logged; business-relevant
// failures and completions get a persisted notification.
type NotificationType string

const (
	// NotificationTypeScheduledEventError is written when a scheduled token
	// attribute update could not be applied
	NotificationTypeScheduledEventError NotificationType = "ScheduleEventError"
	// NotificationTypeBatchRegisterPersonalInfo is written when a personal info
	// registration upload finishes, successfully or not
	NotificationTypeBatchRegisterPersonalInfo NotificationType = "BatchRegisterPersonalInfoError"
)

// NotificationCode distinguishes failure causes within a notification type
type NotificationCode int

const (
	// NotificationCodeProcessed indicates the work item batch finished
	NotificationCodeProcessed NotificationCode = 0
	// NotificationCodeSendFailed indicates the chain transaction could not be sent
	NotificationCodeSendFailed NotificationCode = 1
	// NotificationCodePartialFail indicates some items of an upload failed
	NotificationCodePartialFail NotificationCode = 2
)
