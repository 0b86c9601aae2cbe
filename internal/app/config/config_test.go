package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("missing required variables", func(t *testing.T) {
		err := Validate(&DriverConfig{}, &InternalConfig{JWT: AppJWT{ExpTimeInHour: 1}})
		assert.EqualError(t, err, "missing required environment variables: MONGODB_URI, JWT_SECRET")
	})

	t.Run("non positive jwt expiry", func(t *testing.T) {
		err := Validate(
			&DriverConfig{MongoDB: MongoDB{URI: "mongodb://localhost:27017"}},
			&InternalConfig{JWT: AppJWT{Secret: "secret", ExpTimeInHour: 0}},
		)
		assert.Error(t, err)
	})

	t.Run("slot worker cron spec", func(t *testing.T) {
		internalConfig := &InternalConfig{
			JWT:     AppJWT{Secret: "secret", ExpTimeInHour: 168},
			Booking: AppBooking{SlotWorkerEnabled: true, SlotWorkerCronSpec: "every day please"},
		}
		driverConfig := &DriverConfig{MongoDB: MongoDB{URI: "mongodb://localhost:27017"}}
		assert.Error(t, Validate(driverConfig, internalConfig))

		internalConfig.Booking.SlotWorkerCronSpec = "0 2 * * *"
		assert.NoError(t, Validate(driverConfig, internalConfig))

		internalConfig.Booking.SlotWorkerCronSpec = "@daily"
		assert.NoError(t, Validate(driverConfig, internalConfig))
	})

	t.Run("valid", func(t *testing.T) {
		err := Validate(
			&DriverConfig{MongoDB: MongoDB{URI: "mongodb://localhost:27017"}},
			&InternalConfig{JWT: AppJWT{Secret: "secret", ExpTimeInHour: 168}},
		)
		assert.NoError(t, err)
	})
}

func TestNewInternalConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("APP_AUTO_SEED_DEFAULT_SLOTS", "true")

	internalConfig := NewInternalConfig()

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, internalConfig.App.AllowedOrigins)
	assert.True(t, internalConfig.Booking.AutoSeedDefaultSlots)
	assert.Equal(t, "api", internalConfig.App.EndpointPrefix)
}
