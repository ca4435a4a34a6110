package models

import (
	"testing"
	"time"

	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivestockCounters(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.ctx

	shed, err := env.store.Sheds.Add(ctx, &ShedInput{Name: "Galpon Norte", Code: " gn-1 "})
	require.NoError(t, err)
	assert.Equal(t, "GN-1", shed.Code)

	plantel, err := env.store.Pools.Add(ctx, &PoolInput{Shed: shed.ID, Type: "plantel", Phase: "reproduccion", Code: "P-01"})
	require.NoError(t, err)
	recria, err := env.store.Pools.Add(ctx, &PoolInput{Shed: shed.ID, Type: "recria", Phase: "engorde", Code: "P-02"})
	require.NoError(t, err)

	male := env.addCuy(t, plantel.ID, "A-001", GenreMale)
	female1 := env.addCuy(t, plantel.ID, "A-002", GenreFemale)
	female2 := env.addCuy(t, plantel.ID, "A-003", GenreFemale)

	t.Run("three animals", func(t *testing.T) {
		s := env.shed(t, shed.ID)
		assert.Equal(t, 1, s.MaleNumberCuys)
		assert.Equal(t, 2, s.FemaleNumberCuys)
		assert.Equal(t, 3, s.TotalNumberCuys)
		p := env.pool(t, plantel.ID)
		assert.Equal(t, 3, p.TotalPopulation)
		assert.Equal(t, 2, p.FemalePopulation)
	})

	t.Run("duplicate earring", func(t *testing.T) {
		_, err := env.store.Cuys.Add(ctx, &CuyInput{
			Pool: plantel.ID, Earring: "a-001", Race: "PERU", Genre: GenreChild, Color: "brown",
			BirthdayDate: time.Now(),
		})
		assert.True(t, utils.IsKind(err, utils.KindInvalidInput))
		assert.Equal(t, 3, env.shed(t, shed.ID).TotalNumberCuys)
	})

	t.Run("deactivate and activate animal", func(t *testing.T) {
		_, err := env.store.Cuys.Deactivate(ctx, female2.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, env.pool(t, plantel.ID).TotalPopulation)
		assert.Equal(t, 1, env.shed(t, shed.ID).FemaleNumberCuys)

		_, err = env.store.Cuys.Deactivate(ctx, female2.ID)
		assert.EqualError(t, err, "Cuy is already inactive")

		_, err = env.store.Cuys.Activate(ctx, female2.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, env.pool(t, plantel.ID).TotalPopulation)
	})

	t.Run("genre change", func(t *testing.T) {
		child := GenreChild
		_, err := env.store.Cuys.Update(ctx, female2.ID, &CuyUpdate{Genre: &child})
		require.NoError(t, err)
		s := env.shed(t, shed.ID)
		assert.Equal(t, 1, s.FemaleNumberCuys)
		assert.Equal(t, 1, s.ChildrenNumberCuys)
		assert.Equal(t, 3, s.TotalNumberCuys)
	})

	t.Run("mobilization within the shed", func(t *testing.T) {
		mob, err := env.store.Mobilizations.Add(ctx, &MobilizationInput{
			Cuy: male.ID, Origin: plantel.ID, Destination: recria.ID,
			Date: time.Now().UTC(), Reason: "engorde",
		})
		require.NoError(t, err)
		assert.Equal(t, env.admin.ID, mob.UserId)

		assert.Equal(t, 0, env.pool(t, plantel.ID).MalePopulation)
		assert.Equal(t, 1, env.pool(t, recria.ID).MalePopulation)
		s := env.shed(t, shed.ID)
		assert.Equal(t, 1, s.MaleNumberCuys)
		assert.Equal(t, 3, s.TotalNumberCuys)

		_, err = env.store.Mobilizations.Add(ctx, &MobilizationInput{
			Cuy: male.ID, Origin: plantel.ID, Destination: recria.ID,
			Date: time.Now().UTC(), Reason: "again",
		})
		assert.EqualError(t, err, "Invalid origin pool of Cuy")
		assert.Contains(t, env.events.types(), "cuy.mobilized")
	})

	t.Run("pool deactivation freezes snapshot", func(t *testing.T) {
		_, err := env.store.Pools.Deactivate(ctx, recria.ID)
		require.NoError(t, err)
		p := env.pool(t, recria.ID)
		assert.False(t, p.Active)
		assert.Equal(t, 1, p.TotalPopulation)
		assert.Equal(t, 2, env.shed(t, shed.ID).TotalNumberCuys)

		child := GenreChild
		_, err = env.store.Cuys.Update(ctx, male.ID, &CuyUpdate{Genre: &child})
		require.NoError(t, err)
		assert.Equal(t, 1, env.pool(t, recria.ID).TotalPopulation)

		_, err = env.store.Cuys.Activate(ctx, male.ID)
		assert.EqualError(t, err, "Pool of cuy is inactive")

		_, err = env.store.Cuys.Add(ctx, &CuyInput{
			Pool: recria.ID, Earring: "A-009", Race: "PERU", Genre: GenreMale, Color: "white",
			BirthdayDate: time.Now(),
		})
		assert.EqualError(t, err, "Pools is inactive. Can not add cuy to inactive pool")
		env.assertConsistent(t, shed.ID)
	})

	t.Run("death round trip", func(t *testing.T) {
		before := env.shed(t, shed.ID)
		record := &RecordInput{Date: time.Now().UTC(), Reason: "enfermedad", CertifiedBy: env.admin.ID}

		_, err := env.store.Cuys.RegisterDeath(ctx, female1.ID, record)
		require.NoError(t, err)
		assert.Equal(t, before.TotalNumberCuys-1, env.shed(t, shed.ID).TotalNumberCuys)

		_, err = env.store.Cuys.RegisterDeath(ctx, female1.ID, record)
		assert.EqualError(t, err, "Death is already registered in cuy. Might you want to update death")
		_, err = env.store.Cuys.RegisterSaca(ctx, female1.ID, record)
		assert.True(t, utils.IsKind(err, utils.KindForbidden))

		_, err = env.store.Cuys.RemoveDeath(ctx, female1.ID)
		require.NoError(t, err)
		_, err = env.store.Cuys.Activate(ctx, female1.ID)
		require.NoError(t, err)

		after := env.shed(t, shed.ID)
		assert.Equal(t, before.TotalNumberCuys, after.TotalNumberCuys)
		assert.Equal(t, before.FemaleNumberCuys, after.FemaleNumberCuys)
		assert.Contains(t, env.events.types(), "cuy.death_registered")
	})

	t.Run("saca report", func(t *testing.T) {
		_, err := env.store.Cuys.RegisterSaca(ctx, female2.ID, &RecordInput{
			Date: time.Now().UTC(), Reason: "venta", CertifiedBy: env.admin.ID,
		})
		require.NoError(t, err)

		reason := "ven"
		report, err := env.store.Cuys.SacaReport(ctx, ReportFilter{ShedId: &shed.ID, Reason: &reason}, utils.NormalizePage(nil, nil))
		require.NoError(t, err)
		require.Equal(t, 1, report.TotalNumCuys)
		assert.Equal(t, "A-003", report.CuyList[0].Earring)
		assert.Equal(t, "P-01", report.CuyList[0].PoolCode)
		env.assertConsistent(t, shed.ID)
	})

	t.Run("shed deactivation and deletion", func(t *testing.T) {
		_, err := env.store.Sheds.Delete(ctx, shed.ID)
		assert.EqualError(t, err, "Forbidden Could not delete active shed")

		_, err = env.store.Sheds.Deactivate(ctx, shed.ID)
		require.NoError(t, err)
		s := env.shed(t, shed.ID)
		assert.False(t, s.Active)
		// male (frozen in P-02) and female1 are the live animals left
		assert.Equal(t, 2, s.TotalNumberCuys)

		_, err = env.store.Pools.Activate(ctx, plantel.ID)
		assert.EqualError(t, err, "Shed of pool is inactive")

		_, err = env.store.Sheds.Delete(ctx, shed.ID)
		require.NoError(t, err)
		var count int64
		require.NoError(t, env.store.DB().Model(&Cuy{}).Count(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, env.store.DB().Model(&Mobilization{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestMobilizationAcrossSheds(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.ctx

	norte, err := env.store.Sheds.Add(ctx, &ShedInput{Name: "Galpon Norte", Code: "GN-1"})
	require.NoError(t, err)
	sur, err := env.store.Sheds.Add(ctx, &ShedInput{Name: "Galpon Sur", Code: "GS-1"})
	require.NoError(t, err)
	origin, err := env.store.Pools.Add(ctx, &PoolInput{Shed: norte.ID, Type: "plantel", Phase: "reproduccion", Code: "N-01"})
	require.NoError(t, err)
	destination, err := env.store.Pools.Add(ctx, &PoolInput{Shed: sur.ID, Type: "recria", Phase: "engorde", Code: "S-01"})
	require.NoError(t, err)

	moved := env.addCuy(t, origin.ID, "B-001", GenreFemale)
	env.addCuy(t, origin.ID, "B-002", GenreMale)

	_, err = env.store.Mobilizations.Add(utils.SetOperationNameInContext(ctx, "addMobilization"), &MobilizationInput{
		Cuy: moved.ID, Origin: origin.ID, Destination: destination.ID,
		Date: time.Now().UTC(), Reason: "traslado",
	})
	require.NoError(t, err)
	ev, ok := env.events.last("cuy.mobilized")
	require.True(t, ok)
	assert.Equal(t, "addMobilization", ev.Operation)
	assert.Equal(t, env.admin.ID, ev.UserId)

	n := env.shed(t, norte.ID)
	assert.Equal(t, 0, n.FemaleNumberCuys)
	assert.Equal(t, 1, n.MaleNumberCuys)
	assert.Equal(t, 1, n.TotalNumberCuys)
	s := env.shed(t, sur.ID)
	assert.Equal(t, 1, s.FemaleNumberCuys)
	assert.Equal(t, 1, s.TotalNumberCuys)
	assert.Equal(t, 0, env.pool(t, origin.ID).FemalePopulation)
	assert.Equal(t, 1, env.pool(t, destination.ID).FemalePopulation)
	env.assertConsistent(t, norte.ID)
	env.assertConsistent(t, sur.ID)
}

func TestPermissionCachePatching(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.ctx

	_, err := env.store.Operations.Sync(ctx, OperationRegistry)
	require.NoError(t, err)
	addShed, err := env.store.Operations.IdByName(ctx, "addShed")
	require.NoError(t, err)
	sheds, err := env.store.Operations.IdByName(ctx, "sheds")
	require.NoError(t, err)

	_, err = env.store.Operations.IdByName(ctx, "doesNotExist")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	role, err := env.store.Roles.Add(ctx, &RoleInput{Name: "galponero"})
	require.NoError(t, err)
	_, err = env.store.Roles.AddOperation(ctx, role.ID, sheds)
	require.NoError(t, err)

	roles, ops, err := env.store.Permissions.Compute(ctx, env.admin.ID)
	require.NoError(t, err)
	assert.Zero(t, roles)
	assert.Empty(t, ops)

	_, err = env.store.Users.AddRole(ctx, env.admin.ID, role.ID)
	require.NoError(t, err)
	roles, ops, err = env.store.Permissions.Compute(ctx, env.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, roles)
	assert.ElementsMatch(t, []int{sheds}, ops)
	version, err := env.store.Permissions.Version(ctx, env.admin.ID)
	require.NoError(t, err)
	require.NoError(t, env.store.Permissions.Save(ctx, env.admin.ID, version, ops))

	t.Run("grant patches a warm set", func(t *testing.T) {
		_, err := env.store.Roles.AddOperation(ctx, role.ID, addShed)
		require.NoError(t, err)
		cached, err := env.store.Permissions.Cached(ctx, env.admin.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{sheds, addShed}, cached)
	})

	t.Run("revoke patches a warm set", func(t *testing.T) {
		_, err := env.store.Roles.DeleteOperation(ctx, role.ID, addShed)
		require.NoError(t, err)
		cached, err := env.store.Permissions.Cached(ctx, env.admin.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{sheds}, cached)
	})

	t.Run("grant after expiry leaves no set behind", func(t *testing.T) {
		require.NoError(t, env.store.cache.Delete(ctx, PermissionKey(env.admin.ID)))

		_, err := env.store.Roles.AddOperation(ctx, role.ID, addShed)
		require.NoError(t, err)
		exists, err := env.store.cache.Exists(ctx, PermissionKey(env.admin.ID))
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = env.store.Roles.DeleteOperation(ctx, role.ID, addShed)
		require.NoError(t, err)
	})

	t.Run("stale computed set is not cached", func(t *testing.T) {
		stale, err := env.store.Permissions.Version(ctx, env.admin.ID)
		require.NoError(t, err)
		_, ops, err := env.store.Permissions.Compute(ctx, env.admin.ID)
		require.NoError(t, err)

		_, err = env.store.Roles.AddOperation(ctx, role.ID, addShed)
		require.NoError(t, err)
		require.NoError(t, env.store.Permissions.Save(ctx, env.admin.ID, stale, ops))
		cached, err := env.store.Permissions.Cached(ctx, env.admin.ID)
		require.NoError(t, err)
		assert.Empty(t, cached)

		fresh, err := env.store.Permissions.Version(ctx, env.admin.ID)
		require.NoError(t, err)
		_, ops, err = env.store.Permissions.Compute(ctx, env.admin.ID)
		require.NoError(t, err)
		require.NoError(t, env.store.Permissions.Save(ctx, env.admin.ID, fresh, ops))
		cached, err = env.store.Permissions.Cached(ctx, env.admin.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{sheds, addShed}, cached)
	})

	t.Run("role held by user cannot be deleted", func(t *testing.T) {
		_, err := env.store.Roles.Delete(ctx, role.ID)
		assert.EqualError(t, err, "Forbidden. Role is being used by user, delete role from user first")
	})

	t.Run("role change on user drops the set", func(t *testing.T) {
		_, err := env.store.Users.DeleteRole(ctx, env.admin.ID, role.ID)
		require.NoError(t, err)
		cached, err := env.store.Permissions.Cached(ctx, env.admin.ID)
		require.NoError(t, err)
		assert.Empty(t, cached)
	})

	t.Run("login stores refresh credential", func(t *testing.T) {
		auth, err := env.store.Users.Login(ctx, "admin@grange.test", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "900000", auth.TokenExpiration)

		refreshed, err := env.store.Users.Refresh(ctx, auth.TokenRefresh, "127.0.0.1")
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.Token)

		_, err = env.store.Users.Refresh(ctx, auth.TokenRefresh, "10.0.0.1")
		assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))

		_, err = env.store.Users.Login(ctx, "admin@grange.test", "wrong")
		assert.EqualError(t, err, "Incorrect password")
	})
}
