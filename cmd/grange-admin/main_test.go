package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdminRequiresCredentials(t *testing.T) {
	seedAdminOpts.email, seedAdminOpts.password = "", ""
	err := seedAdminCmd.RunE(seedAdminCmd, nil)
	assert.EqualError(t, err, "--email and --password are required")
}

func TestRecountShedFlag(t *testing.T) {
	require.NoError(t, recountCmd.Flags().Parse([]string{"--shed", "4"}))
	assert.Equal(t, 4, recountShedId)

	flag := recountCmd.Flags().Lookup("shed")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestSeedAdminFlagDefaults(t *testing.T) {
	for name, def := range map[string]string{"first-name": "Admin", "last-name": "Grange", "email": ""} {
		flag := seedAdminCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, def, flag.DefValue, name)
	}
}
