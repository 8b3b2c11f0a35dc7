package docs

import _ "embed"

// SwaggerJSON documento OpenAPI embebido en el binario, de modo que la UI de
// swagger funciona sin importar el directorio desde el que se arranque.
//
//go:embed swagger.json
var SwaggerJSON []byte
