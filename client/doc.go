// Package client fetches calstream bodies over HTTP and renders them.
//
// A Fetcher performs one GET per call, decompresses the body according to its
// Content-Encoding header and decodes it with fresh channel decoders. When a
// body is byte-identical to the previous successful one, the previously
// decoded points are reused.
//
// A Session serializes renders for one consumer. Starting a render cancels the
// request of any render still in flight, and a render whose generation is no
// longer the newest returns errs.ErrSuperseded without writing anything:
//
//	fetcher, _ := client.NewFetcher(client.WithTimeout(10 * time.Second))
//	session := client.NewSession(fetcher)
//	err := session.Render(ctx, url, calendar.NewTextHeatmap(), os.Stdout)
package client
