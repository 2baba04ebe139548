package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"room-reservation-backend/services"
	"room-reservation-backend/utils"
)

type ImageController struct {
	files *services.FileService
}

func NewImageController(files *services.FileService) *ImageController {
	return &ImageController{files: files}
}

// UploadImages accepts a multipart form with a "roomId" field and one or more
// "files" parts. Each file is stored independently; rejected files are listed
// in the summary instead of failing the batch.
func (ic *ImageController) UploadImages(c *gin.Context) {
	roomID, err := uuid.Parse(c.PostForm("roomId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing or invalid roomId field")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no files were uploaded")
		return
	}

	files := make([]services.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		files = append(files, services.UploadFile{Name: header.Filename, Data: data})
	}

	summary, err := ic.files.StoreImages(c.Request.Context(), roomID, files)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toUploadSummaryResponse(summary))
}

func (ic *ImageController) GetAllImages(c *gin.Context) {
	images, err := ic.files.GetAllImages(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toImageResponses(images))
}

func (ic *ImageController) GetImageByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	image, err := ic.files.GetImageByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toImageResponse(*image))
}

func (ic *ImageController) DeleteImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := ic.files.DeleteImage(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ic *ImageController) DeleteImagesForRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := ic.files.DeleteImagesForRoom(c.Request.Context(), roomID); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
