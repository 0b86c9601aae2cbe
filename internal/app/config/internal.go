package config

type InternalConfig struct {
	App     App
	JWT     AppJWT
	Booking AppBooking
	Admin   AppAdmin
	Minio   AppMinio
	Events  AppEvents
}

type App struct {
	Env                         string
	Port                        string
	Version                     string
	Timezone                    string
	EndpointPrefix              string
	AllowedOrigins              []string
	MaxRequests                 int
	MaxBookingRequestsPerMinute int
	MaxLoginRequestsPerMinute   int
	ShutdownTimeout             int
	RequestTimeoutInSecond      int
	RequestBodyLimitInMegabyte  int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppBooking struct {
	AutoSeedDefaultSlots bool
	LockTTLInSecond      int
	SlotWorkerEnabled    bool
	// SlotWorkerCronSpec accepts standard cron fields or descriptors such as "@daily"
	SlotWorkerCronSpec  string
	SlotWorkerDaysAhead int
}

type AppAdmin struct {
	DefaultName     string
	DefaultEmail    string
	DefaultPassword string
}

type AppMinio struct {
	LedgerExportBucketName     string
	PresignedURLExpiryInMinute int
}

type AppEvents struct {
	Exchange string
}
