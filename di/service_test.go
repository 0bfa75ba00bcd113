package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/oodesign/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type battery struct{ Volts int }

type radio struct{ Band string }

type droid struct {
	Battery *battery
	Radio   *radio
}

var (
	batteryKey = di.Key("battery")
	radioKey   = di.Key("radio")
)

func newDroid() *di.Service[droid] { return di.Init(func() *droid { return &droid{} }) }

func bindBattery(d *droid, b *battery) { d.Battery = b }
func bindRadio(d *droid, r *radio)     { d.Radio = r }

// Init / Value
func TestInitAndValue(t *testing.T) {
	t.Parallel()

	svc := newDroid()
	require.NotNil(t, svc.Value())
	require.NotNil(t, svc.Deps)
	assert.Empty(t, svc.Deps)
	assert.Equal(t, di.DependencyKey("battery"), batteryKey)
}

// With / WithAll
func TestWith_NilInjector_NoOp(t *testing.T) {
	t.Parallel()

	svc := newDroid()
	got, err := svc.With(nil)
	require.NoError(t, err)
	assert.Same(t, svc, got)
}

func TestWithAll_AppliesInOrderAndStopsOnError(t *testing.T) {
	t.Parallel()

	bat := di.Init(func() *battery { return &battery{Volts: 12} })
	rad := di.Init(func() *radio { return &radio{Band: "UHF"} })

	injBattery := di.Injecting(batteryKey, bat, bindBattery)
	injRadio := di.Injecting(radioKey, rad, bindRadio)

	d := newDroid()
	_, err := d.WithAll(injBattery, injBattery, injRadio)

	var dup di.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, batteryKey, dup.Key)

	assert.Same(t, bat.Value(), d.Value().Battery)
	assert.Nil(t, d.Value().Radio)
	assert.True(t, d.Has(batteryKey))
	assert.False(t, d.Has(radioKey))
}

// Injecting – error cases
func TestInjecting_Errors(t *testing.T) {
	t.Parallel()

	validDep := di.Init(func() *battery { return &battery{} })

	cases := []struct {
		name   string
		target *di.Service[droid]
		dep    *di.Service[battery]
		bind   func(*droid, *battery)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "nil target service",
			target: nil,
			dep:    validDep,
			bind:   bindBattery,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, di.ErrNilTarget) },
		},
		{
			name:   "nil target value",
			target: &di.Service[droid]{},
			dep:    validDep,
			bind:   bindBattery,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, di.ErrNilTarget) },
		},
		{
			name:   "nil dependency service",
			target: newDroid(),
			dep:    nil,
			bind:   bindBattery,
			check: func(t *testing.T, err error) {
				var got di.NilDependencyServiceError
				require.True(t, errors.As(err, &got))
				assert.Equal(t, batteryKey, got.Key)
				assert.ErrorIs(t, err, di.ErrNilDep)
			},
		},
		{
			name:   "nil dependency value",
			target: newDroid(),
			dep:    &di.Service[battery]{},
			bind:   bindBattery,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, di.ErrNilDep) },
		},
		{
			name:   "nil bind function",
			target: newDroid(),
			dep:    validDep,
			bind:   nil,
			check: func(t *testing.T, err error) {
				var got di.NilBindError
				require.True(t, errors.As(err, &got))
				assert.Equal(t, batteryKey, got.Key)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := di.Injecting(batteryKey, tc.dep, tc.bind)(tc.target)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

// TestInjecting_CreatesDepsMap covers a Service built by hand without a Deps bag.
func TestInjecting_CreatesDepsMap(t *testing.T) {
	t.Parallel()

	target := &di.Service[droid]{Val: &droid{}}
	bat := di.Init(func() *battery { return &battery{Volts: 9} })

	require.NoError(t, di.Injecting(batteryKey, bat, bindBattery)(target))
	require.NotNil(t, target.Deps)
	assert.Equal(t, 9, target.Val.Battery.Volts)
}

// Accessors – GetAs / TryGetAs / MustGetAs
func TestAccessors(t *testing.T) {
	t.Parallel()

	bat := di.Init(func() *battery { return &battery{Volts: 5} })
	d := newDroid()
	_, err := d.With(di.Injecting(batteryKey, bat, bindBattery))
	require.NoError(t, err)

	got, ok := di.GetAs[droid, battery](d, batteryKey)
	require.True(t, ok)
	assert.Same(t, bat.Value(), got)
	assert.Same(t, bat.Value(), di.MustGetAs[droid, battery](d, batteryKey))

	_, ok = di.GetAs[droid, radio](d, batteryKey)
	assert.False(t, ok)

	_, err = di.TryGetAs[droid, radio](d, batteryKey)
	var wt di.WrongTypeDependencyError
	require.True(t, errors.As(err, &wt))
	assert.Equal(t, "*di_test.battery", wt.GotType)

	_, err = di.TryGetAs[droid, battery](d, radioKey)
	var me di.MissingDependencyError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, radioKey, me.Key)

	assert.Panics(t, func() { _ = di.MustGetAs[droid, radio](d, radioKey) })
}

func TestAccessors_Guards(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		svc  *di.Service[droid]
	}{
		{name: "nil service", svc: nil},
		{name: "nil deps", svc: &di.Service[droid]{Val: &droid{}}},
		{name: "raw nil value", svc: &di.Service[droid]{Val: &droid{}, Deps: map[di.DependencyKey]any{batteryKey: nil}}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := di.GetAs[droid, battery](tc.svc, batteryKey)
			assert.Nil(t, got)
			assert.False(t, ok)

			_, err := di.TryGetAs[droid, battery](tc.svc, batteryKey)
			var me di.MissingDependencyError
			assert.True(t, errors.As(err, &me))
		})
	}

	assert.False(t, (*di.Service[droid])(nil).Has(batteryKey))
}

// Errors – ensure Error() strings are covered in one place
func TestErrors_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"DuplicateKeyError", di.DuplicateKeyError{Key: "radio"}, `di: duplicate dependency key "radio"`},
		{"MissingDependencyError", di.MissingDependencyError{Key: "radio"}, `di: dependency "radio" missing`},
		{"WrongTypeDependencyError", di.WrongTypeDependencyError{Key: "radio", GotType: "*x.Y"}, `di: dependency "radio" has wrong type (*x.Y)`},
		{"NilDependencyServiceError", di.NilDependencyServiceError{Key: "radio"}, `di: nil dependency service for key "radio"`},
		{"NilBindError", di.NilBindError{Key: "radio"}, `di: nil bind function for key "radio"`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}
