package globals

import (
	"context"
)

var Ctx = context.Background()

// SettingsID is the fixed _id of the restaurant settings singleton.
const SettingsID = "global_restaurant_settings"
