// Package server exposes a Solver over NATS request/reply.
//
// Requests are JSON-encoded problems published to the solve subject; replies
// carry either the result or an error code. Responders join a queue group so
// several instances can share the load:
//
//	srv := server.New(nc, solver, server.Config{Subject: "teamsplit.solve", QueueGroup: "teamsplit"})
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//	defer srv.Stop()
//
// Client is the matching requester:
//
//	client := server.NewClient(nc, "teamsplit.solve", 30*time.Second)
//	res, err := client.Solve(ctx, problem)
package server
