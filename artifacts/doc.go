// Package artifacts provides a client for the ArtifactsMMO REST API.
//
// ArtifactsMMO is an MMO played entirely through HTTP calls. This package maps
// each endpoint to a typed method and each response body to a Go struct.
//
// # Usage
//
// Create a client with your account token:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := artifacts.NewClient(
//		"your-token",
//		logger,
//		artifacts.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	moved, err := client.Move(ctx, "hero", 0, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(moved.Cooldown.RemainingSeconds)
//
// Listing methods such as Items and Monsters walk every page of the listing
// and return the concatenated result.
//
// # Error Handling
//
// Every method returns one of three error kinds:
//
//   - *APIError: the server answered with an error envelope; carries the
//     server's code and message unchanged
//   - *DecodeError: the body did not have the expected shape
//   - *TransportError: the HTTP exchange itself failed
//
// Use errors.As to tell them apart:
//
//	var apiErr *artifacts.APIError
//	if errors.As(err, &apiErr) && apiErr.IsCooldown() {
//		// wait and try again
//	}
package artifacts
