// Package sumserver provides a Model Context Protocol server that exposes a
// single tool, calculate_sum, which adds two numbers.
//
// The server can be driven two ways: served over an MCP transport, or called
// directly in-process. Both go through the same tool registry, so the tools a
// client discovers are exactly the tools it can call.
//
// # Serving
//
// Serve over stdio, the transport MCP hosts use for local subprocess servers:
//
//	srv, err := sumserver.New(
//	    sumserver.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Stdout carries protocol frames, so loggers must write somewhere else.
// WithTransport(sumserver.TransportHTTP) serves the streamable HTTP transport
// at /mcp on the address given by WithHTTPAddr instead.
//
// # Library Mode
//
//	tools := srv.ListTools()            // one descriptor: calculate_sum
//	result, err := srv.CallTool(ctx, "calculate_sum", map[string]any{"a": 2, "b": 3})
//	// result.Content[0] is *mcp.TextContent{Text: "the sum is: 5"}
//
// # Error Handling
//
// Calling a tool that is not registered fails with *UnknownToolError. Missing
// or non-numeric arguments fail with *InvalidArgumentError:
//
//	_, err := srv.CallTool(ctx, "unknown_tool", nil)
//	if unknown, ok := errors.AsType[*sumserver.UnknownToolError](err); ok {
//	    log.Printf("no such tool: %s", unknown.Name)
//	}
//
// Over a transport both are returned to the client as JSON-RPC invalid-params
// errors.
package sumserver
