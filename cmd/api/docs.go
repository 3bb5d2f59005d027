package main

// @title           ContaPyme API
// @version         1.0
// @description     API de contabilidad y remuneraciones para pymes chilenas: IVA mensual (F29), renta anual (F22), liquidaciones de sueldo y archivo Previred.

// @contact.name   Soporte ContaPyme
// @contact.email  soporte@contapyme.cl

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Autenticación JWT con esquema Bearer. Ejemplo: "Bearer {token}"
