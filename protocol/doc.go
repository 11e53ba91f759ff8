package protocol

// This package implements parsing and serialising the payloads that a rollup
// backend exchanges with the rollup node.
//
// - `Request` - An input the node hands us in response to a finish call.
// - `Status` - The verdict we report for the previously handled request.
// - `Command` - The structured object carried, hex encoded, in a request payload.
//
// === Finish
//
// Every turn of the backend starts by reporting the previous status
//
//   ```
//   > POST /finish
//   > {"status":"accept"}
//   ```
//
// A 202 response means no input is pending and the backend should ask again.
// Any other 2xx response carries the next request
//
//   ```
//   < {"request_type":"advance_state",
//   <  "data":{"payload":"0x7b22...","metadata":{"msg_sender":"0xabc..."}}}
//   ```
//
// `inspect_state` requests carry `data.payload` only.
//
// === Payload encoding
//
// Payloads are a 2 character marker (`0x`) followed by the hex encoding of the
// UTF-8 text of a JSON object. Decoding strips exactly 2 characters, it does
// not check what they are.
//
// === Outputs
//
//   ```
//   > POST /notice
//   > {"payload":"0x35"}
//   ```
//
// `/report` takes the same body and is used to answer inspect requests.
//
