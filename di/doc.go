// Package di is a minimal, explicit dependency injection helper.
//
// A Service[T] holds a constructed value plus a bag of the dependencies that
// were wired into it. Injectors do the wiring and report mistakes as typed
// errors (nil targets, nil dependencies, duplicate keys) instead of panicking.
//
// There is no container and no reflection-based injection: the composition
// root decides what goes where.
//
//	sender := di.Init(func() *robot.MessageSender {
//		var s robot.MessageSender = robot.NewAntenna(os.Stdout)
//		return &s
//	})
//	r := di.Init(func() *robot.Robot { return robot.New("T-800", "101") })
//	_, err := r.With(robot.WithSender(sender))
//
// Interfaces are injected as a *Service[I] whose value is a pointer to an
// interface value, so the same Injecting helper works for concrete and
// abstract dependencies.
package di
